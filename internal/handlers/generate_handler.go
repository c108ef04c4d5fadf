package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pcbuilder/internal/buildgen"
)

// BuildGenerator produces recommendations.
type BuildGenerator interface {
	Generate(ctx context.Context, req buildgen.Request) (*buildgen.Recommendation, error)
}

// GenerateHandler exposes the build generator.
type GenerateHandler struct {
	generator BuildGenerator
}

func NewGenerateHandler(generator BuildGenerator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

func (h *GenerateHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/generateBuild", h.HandleGenerate)
}

// HandleGenerate runs the generator for the posted form.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req buildgen.Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Budget and use case are required")
	}

	rec, err := h.generator.Generate(c.UserContext(), req)
	if err == nil {
		return c.JSON(rec)
	}

	var perr *buildgen.ParseError
	switch {
	case errors.Is(err, buildgen.ErrMissingInput):
		return badRequest(c, "Budget and use case are required")
	case errors.Is(err, buildgen.ErrInvalidAPIKey):
		zap.L().Error("AI API key is invalid or expired. Renew the API key.", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "API key is invalid or expired. Contact the administrator.",
		})
	case errors.Is(err, buildgen.ErrQuota):
		zap.L().Error("AI quota exhausted", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "AI service quota exceeded. Try again later.",
		})
	case errors.As(err, &perr):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message":     "Failed to parse AI response",
			"rawResponse": perr.Raw,
		})
	default:
		zap.L().Error("Error generating build", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate PC build recommendation",
			"error":   err.Error(),
		})
	}
}
