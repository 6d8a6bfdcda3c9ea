package handlers

import (
	"log"

	"ecoshare/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ActionHandler handles HTTP requests for eco-action submissions.
type ActionHandler struct {
	actions  *services.ActionService
	validate *validator.Validate
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(actions *services.ActionService) *ActionHandler {
	return &ActionHandler{
		actions:  actions,
		validate: validator.New(),
	}
}

// RegisterProtectedRoutes registers the routes requiring a valid token.
func (h *ActionHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/actions/validate", h.HandleValidate)
}

// ValidateActionRequest represents the request body for an eco-action.
type ValidateActionRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=TreePlanting WaterSaving"`
	Description string `json:"description"`
	PhotoName   string `json:"photoName" validate:"required"`
}

// HandleValidate runs the validator over the submitted evidence and reports
// the verdict together with any streaks awarded.
func (h *ActionHandler) HandleValidate(c *fiber.Ctx) error {
	var req ValidateActionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing action request body: %v", err)
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

	outcome, err := h.actions.Submit(c.Context(), services.ActionKind(req.Kind), services.ActionContext{
		Description: req.Description,
		PhotoName:   req.PhotoName,
	})
	if err != nil {
		return fail(c, "Could not validate action", err)
	}

	return c.JSON(outcome)
}
