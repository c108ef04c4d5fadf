// Package server assembles the Fiber application.
package server

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pcbuilder/internal/config"
	"pcbuilder/internal/handlers"
	"pcbuilder/internal/middleware"
	"pcbuilder/internal/repositories"
	"pcbuilder/internal/services"
)

// Deps are the runtime collaborators of the server.
type Deps struct {
	DB *gorm.DB
	// Generator serves POST /generateBuild.
	Generator handlers.BuildGenerator
	// Events is optional.
	Events services.EventPublisher
}

// New builds the Fiber app with every route mounted.
func New(cfg *config.Config, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "pcbuilder",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: cfg.IsProduction(),
		ReadTimeout:           30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	userRepo := repositories.NewGORMUserRepository(deps.DB)
	buildRepo := repositories.NewGORMBuildRepository(deps.DB)
	benchmarkRepo := repositories.NewGORMBenchmarkRepository(deps.DB)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo, deps.Events)
	buildService := services.NewBuildService(buildRepo, userRepo, deps.Events)
	benchmarkService := services.NewBenchmarkService(benchmarkRepo)
	adminService := services.NewAdminService(userService, buildService)

	validate := handlers.NewValidator()
	auth := middleware.AuthRequired(authService)
	admin := middleware.AdminRequired(userRepo)

	newHealthHandler(deps.DB).RegisterRoutes(app)
	handlers.NewAuthHandler(authService, validate).RegisterRoutes(app)
	handlers.NewUserHandler(userService, validate).RegisterRoutes(app, auth)
	handlers.NewBuildHandler(buildService, validate).RegisterRoutes(app, auth)
	handlers.NewBenchmarkHandler(benchmarkService).RegisterRoutes(app)
	handlers.NewAdminHandler(adminService).RegisterRoutes(app, auth, admin)
	handlers.NewGenerateHandler(deps.Generator).RegisterRoutes(app)

	if cfg.FrontendDir != "" {
		mountFrontend(app, cfg.FrontendDir)
	}

	return app
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}
	// Fiber rejects credentials combined with a wildcard origin.
	wildcard := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}
	if wildcard {
		c.AllowOrigins = "*"
	} else {
		c.AllowCredentials = true
	}
	return c
}

// mountFrontend serves the built single-page app. Unknown GET paths fall back
// to index.html so client-side routes survive a reload.
func mountFrontend(app *fiber.App, dir string) {
	app.Static("/", dir, fiber.Static{Compress: true})
	index := filepath.Join(dir, "index.html")
	app.Get("*", func(c *fiber.Ctx) error {
		return c.SendFile(index)
	})
	zap.L().Info("Serving frontend", zap.String("dir", dir))
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}
	zap.L().Error("Unhandled error",
		zap.Error(err),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Something went wrong!",
	})
}
