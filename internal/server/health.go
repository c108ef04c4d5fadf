package server

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pcbuilder/internal/database"
)

type healthHandler struct {
	db      *gorm.DB
	started time.Time
}

func newHealthHandler(db *gorm.DB) *healthHandler {
	return &healthHandler{db: db, started: time.Now()}
}

func (h *healthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth reports liveness, database reachability and process memory.
func (h *healthHandler) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status, dbStatus, code := "healthy", "connected", fiber.StatusOK
	if err := database.Ping(ctx, h.db); err != nil {
		zap.L().Warn("Health check database ping failed", zap.Error(err))
		status, dbStatus, code = "degraded", "unreachable", fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"time":      time.Now().Format(time.RFC3339),
		"database":  dbStatus,
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"memoryRSS": residentMemory(),
	})
}

// residentMemory returns the RSS of this process in bytes, or 0 if unknown.
func residentMemory() uint64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	info, err := p.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return info.RSS
}
