package handlers

import (
	"fmt"
	"log"
	"strconv"

	"ecoshare/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FeedHandler handles HTTP requests for the community sharing feed.
type FeedHandler struct {
	feed     *services.FeedService
	session  *services.SessionService
	emitter  *services.StreakEmitter
	validate *validator.Validate
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feed *services.FeedService, session *services.SessionService, emitter *services.StreakEmitter) *FeedHandler {
	return &FeedHandler{
		feed:     feed,
		session:  session,
		emitter:  emitter,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public feed routes.
func (h *FeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/feed", h.HandleGetFeed)
	router.Get("/feed/items/:id", h.HandleGetItem)
}

// RegisterProtectedRoutes registers the routes requiring a valid token.
func (h *FeedHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/feed/items", h.HandleShareItem)
}

// HandleGetFeed returns the feed, newest first.
func (h *FeedHandler) HandleGetFeed(c *fiber.Ctx) error {
	items, err := h.feed.Items()
	if err != nil {
		return fail(c, "Could not load feed", err)
	}
	return c.JSON(fiber.Map{
		"items": items,
	})
}

// HandleGetItem returns a single listing by id.
func (h *FeedHandler) HandleGetItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid listing id",
			"error":   err.Error(),
		})
	}

	item, err := h.feed.FindByID(id)
	if err != nil {
		return fail(c, "Listing not found", err)
	}
	return c.JSON(fiber.Map{
		"item": item,
	})
}

// ShareItemRequest represents the request body for posting a listing.
type ShareItemRequest struct {
	Type        string `json:"type" validate:"required,oneof=Food Product Cloth"`
	ItemName    string `json:"itemName" validate:"required"`
	ListingType string `json:"listingType"`
}

// HandleShareItem posts a new listing for the current user and applies the
// streak-award rule for generous listings.
func (h *FeedHandler) HandleShareItem(c *fiber.Ctx) error {
	var req ShareItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing share request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	user := h.session.Current()
	if user == nil {
		return fail(c, "Please log in to share items", services.ErrNotAuthenticated)
	}

	listing, err := h.feed.AddListing(req.Type, req.ItemName, req.ListingType, user)
	if err != nil {
		return fail(c, "Could not share item", err)
	}

	awarded := services.StreakAwardFor(req.Type, req.ListingType)
	total := h.session.Streaks()
	if awarded > 0 {
		if total, err = h.emitter.Award(awarded); err != nil {
			return fail(c, "Item shared but streak award failed", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        fmt.Sprintf("Listed %s!", listing.ItemName),
		"item":           listing,
		"streaksAwarded": awarded,
		"totalStreaks":   total,
	})
}
