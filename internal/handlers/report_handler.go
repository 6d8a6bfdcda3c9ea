package handlers

import (
	"fmt"
	"log"

	"ecoshare/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles environmental reports and the restaurant finder.
type ReportHandler struct {
	reports     *services.ReportService
	restaurants *services.RestaurantService
	validate    *validator.Validate
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports *services.ReportService, restaurants *services.RestaurantService) *ReportHandler {
	return &ReportHandler{
		reports:     reports,
		restaurants: restaurants,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public routes.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/restaurants", h.HandleFindRestaurants)
}

// RegisterProtectedRoutes registers the routes requiring a valid token.
func (h *ReportHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/reports", h.HandleSendReport)
}

// SendReportRequest represents the request body for a report.
type SendReportRequest struct {
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	Description    string `json:"description" validate:"required"`
}

// HandleSendReport files a geo-tagged report to the given recipient.
func (h *ReportHandler) HandleSendReport(c *fiber.Ctx) error {
	var req SendReportRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing report request body: %v", err)
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

	if err := h.reports.Send(c.Context(), req.RecipientEmail, req.Description); err != nil {
		return fail(c, "Could not send report", err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Report sent to %s!", req.RecipientEmail),
	})
}

// HandleFindRestaurants returns eco-friendly dining near the current position.
func (h *ReportHandler) HandleFindRestaurants(c *fiber.Ctx) error {
	results, err := h.restaurants.FindNearby(c.Context())
	if err != nil {
		return fail(c, "Could not search restaurants", err)
	}
	return c.JSON(fiber.Map{
		"restaurants": results,
	})
}
