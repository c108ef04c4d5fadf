package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pcbuilder/internal/services"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes mounts the admin routes behind auth and the admin guard.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, auth, admin fiber.Handler) {
	group := router.Group("/admin", auth, admin)
	group.Get("/users", h.HandleListUsers)
	group.Get("/builds", h.HandleListBuilds)
	group.Delete("/users/:id", h.HandleDeleteUser)
	group.Delete("/builds/:id", h.HandleDeleteBuild)
}

func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return serverError(c, "Error fetching users", err)
	}
	return c.JSON(users)
}

func (h *AdminHandler) HandleListBuilds(c *fiber.Ctx) error {
	builds, err := h.service.ListBuilds()
	if err != nil {
		return serverError(c, "Error fetching builds", err)
	}
	return c.JSON(builds)
}

func (h *AdminHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.service.DeleteUser(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return serverError(c, "Error deleting user", err)
	}
	return c.JSON(fiber.Map{"message": "User and associated builds deleted"})
}

func (h *AdminHandler) HandleDeleteBuild(c *fiber.Ctx) error {
	if err := h.service.DeleteBuild(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Build not found"})
		}
		return serverError(c, "Error deleting build", err)
	}
	return c.JSON(fiber.Map{"message": "Build deleted"})
}
