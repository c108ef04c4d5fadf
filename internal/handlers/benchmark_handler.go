package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pcbuilder/internal/services"
)

// BenchmarkHandler serves the public benchmark API. Responses use the
// {success, count, data} envelope.
type BenchmarkHandler struct {
	service *services.BenchmarkService
}

func NewBenchmarkHandler(service *services.BenchmarkService) *BenchmarkHandler {
	return &BenchmarkHandler{service: service}
}

// RegisterRoutes registers the benchmark routes. Static segments are
// registered before the :id parameter.
func (h *BenchmarkHandler) RegisterRoutes(router fiber.Router) {
	benchmarks := router.Group("/benchmarks")
	benchmarks.Get("/", h.HandleList)
	benchmarks.Get("/types/all", h.HandleTypes)
	benchmarks.Get("/brands/:componentType", h.HandleBrands)
	benchmarks.Post("/compare", h.HandleCompare)
	benchmarks.Get("/:id", h.HandleGet)
}

// CompareRequest is the body of a comparison.
type CompareRequest struct {
	IDs []string `json:"ids"`
}

func (h *BenchmarkHandler) HandleList(c *fiber.Ctx) error {
	benchmarks, err := h.service.List(services.BenchmarkQuery{
		ComponentType: c.Query("componentType"),
		Brand:         c.Query("brand"),
		Sort:          c.Query("sort"),
		Limit:         c.Query("limit"),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidSort) {
			return benchmarkError(c, fiber.StatusBadRequest, "Invalid sort field")
		}
		return benchmarkServerError(c, "Error fetching benchmarks", err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(benchmarks),
		"data":    benchmarks,
	})
}

func (h *BenchmarkHandler) HandleGet(c *fiber.Ctx) error {
	benchmark, err := h.service.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return benchmarkError(c, fiber.StatusNotFound, "Benchmark not found")
		}
		return benchmarkServerError(c, "Error fetching benchmark", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": benchmark})
}

func (h *BenchmarkHandler) HandleCompare(c *fiber.Ctx) error {
	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return benchmarkError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	benchmarks, err := h.service.Compare(req.IDs)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"success": true, "count": len(benchmarks), "data": benchmarks})
	case errors.Is(err, services.ErrTooFewIDs):
		return benchmarkError(c, fiber.StatusBadRequest, "Please provide at least two benchmark IDs for comparison")
	case errors.Is(err, services.ErrNotFound):
		return benchmarkError(c, fiber.StatusNotFound, "One or more benchmarks not found")
	case errors.Is(err, services.ErrMixedTypes):
		return benchmarkError(c, fiber.StatusBadRequest, "Can only compare components of the same type")
	default:
		return benchmarkServerError(c, "Error comparing benchmarks", err)
	}
}

func (h *BenchmarkHandler) HandleTypes(c *fiber.Ctx) error {
	types, err := h.service.Types()
	if err != nil {
		return benchmarkServerError(c, "Error fetching component types", err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(types), "data": types})
}

func (h *BenchmarkHandler) HandleBrands(c *fiber.Ctx) error {
	brands, err := h.service.Brands(c.Params("componentType"))
	if err != nil {
		return benchmarkServerError(c, "Error fetching brands", err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(brands), "data": brands})
}

func benchmarkError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

func benchmarkServerError(c *fiber.Ctx, logMessage string, err error) error {
	zap.L().Error(logMessage, zap.Error(err), zap.String("path", c.Path()))
	return benchmarkError(c, fiber.StatusInternalServerError, "Server Error")
}
