package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pcbuilder/internal/middleware"
	"pcbuilder/internal/models"
	"pcbuilder/internal/services"
)

// BuildHandler handles HTTP requests for saved builds.
type BuildHandler struct {
	service  *services.BuildService
	validate *validator.Validate
}

// NewBuildHandler creates a new BuildHandler.
func NewBuildHandler(service *services.BuildService, validate *validator.Validate) *BuildHandler {
	return &BuildHandler{service: service, validate: validate}
}

// RegisterRoutes registers the build routes behind auth.
func (h *BuildHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	builds := router.Group("/builds", auth)
	builds.Post("/save", h.HandleSave)
	builds.Get("/user", h.HandleListOwn)
	builds.Get("/:id", h.HandleGet)
	builds.Delete("/:id", h.HandleDelete)
}

// HandleSave stores the posted recommendation for the caller.
func (h *BuildHandler) HandleSave(c *fiber.Ctx) error {
	var build models.Build
	if err := c.BodyParser(&build); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(build); err != nil {
		return validationFailed(c, validationErrors(err))
	}

	if err := h.service.SaveBuild(middleware.UserID(c), &build); err != nil {
		return serverError(c, "Error saving build", err)
	}
	return c.Status(fiber.StatusCreated).JSON(build)
}

// HandleListOwn lists the caller's builds, newest first.
func (h *BuildHandler) HandleListOwn(c *fiber.Ctx) error {
	builds, err := h.service.ListUserBuilds(middleware.UserID(c))
	if err != nil {
		return serverError(c, "Error fetching builds", err)
	}
	return c.JSON(builds)
}

func (h *BuildHandler) HandleGet(c *fiber.Ctx) error {
	build, err := h.service.GetBuildFor(middleware.UserID(c), c.Params("id"))
	if err != nil {
		return h.buildError(c, err, "Not authorized to view this build", "Error fetching build")
	}
	return c.JSON(build)
}

func (h *BuildHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteBuildFor(middleware.UserID(c), c.Params("id")); err != nil {
		return h.buildError(c, err, "Not authorized to delete this build", "Error deleting build")
	}
	return c.JSON(fiber.Map{"message": "Build deleted successfully"})
}

func (h *BuildHandler) buildError(c *fiber.Ctx, err error, forbidden, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Build not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": forbidden})
	default:
		return serverError(c, fallback, err)
	}
}
