package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pcbuilder/internal/middleware"
	"pcbuilder/internal/services"
)

// UserHandler handles the self-service profile endpoints.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

func NewUserHandler(service *services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validate: validate}
}

// RegisterRoutes mounts the routes behind auth.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	users := router.Group("/users", auth)
	users.Put("/update", h.HandleUpdate)
	users.Delete("/delete", h.HandleDelete)
}

// UpdateProfileRequest is the body of a profile update. Omitted fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,min=3,max=50"`
}

func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}
	if req.Name != nil {
		// Length rules apply to the stored, trimmed name; blank means unchanged.
		if trimmed := strings.TrimSpace(*req.Name); trimmed != "" {
			req.Name = &trimmed
		} else {
			req.Name = nil
		}
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, validationErrors(err))
	}

	user, err := h.service.UpdateName(middleware.UserID(c), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return serverError(c, "Error updating profile", err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    user.Profile(),
	})
}

// HandleDelete deletes the caller's account and all of their builds.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(middleware.UserID(c)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return serverError(c, "Error deleting account", err)
	}
	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}
