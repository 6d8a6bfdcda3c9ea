package handlers

import (
	"fmt"
	"log"

	"ecoshare/internal/models"
	"ecoshare/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration, login and the profile.
type AuthHandler struct {
	session  *services.SessionService
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(session *services.SessionService) *AuthHandler {
	return &AuthHandler{
		session:  session,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the routes requiring a valid token.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Get("/profile", h.HandleProfile)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var profile models.UserAccount
	if err := c.BodyParser(&profile); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.session.Register(profile)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		return fail(c, "Registration failed", err)
	}

	token, err := h.session.GenerateToken(user)
	if err != nil {
		return fail(c, "Registration succeeded but token issuance failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Welcome, %s! Registration successful.", user.Username),
		"user":    user.Sanitized(),
		"token":   token,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
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

	user, err := h.session.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for %s: %v", req.Email, err)
		return fail(c, "Authentication failed", err)
	}

	token, err := h.session.GenerateToken(user)
	if err != nil {
		return fail(c, "Login succeeded but token issuance failed", err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Welcome back, %s!", user.Username),
		"user":    user.Sanitized(),
		"token":   token,
	})
}

// HandleLogout clears the current session.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if err := h.session.Logout(); err != nil {
		return fail(c, "Logout failed", err)
	}
	return c.JSON(fiber.Map{
		"message": "Logged out successfully.",
	})
}

// HandleProfile returns the username and streak counter of the active session.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	user := h.session.Current()
	if user == nil {
		return fail(c, "No active session", services.ErrNotAuthenticated)
	}
	return c.JSON(fiber.Map{
		"user":    user.Sanitized(),
		"streaks": h.session.Streaks(),
	})
}
