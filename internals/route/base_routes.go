package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"giuaschool_backend/internals/helpers"
)

// BaseRoutes serves /health (process alive) and /ready (database reachable).
func BaseRoutes(app *fiber.App, ping Pinger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return helper.Success(c, "ok", fiber.Map{
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("APP_ENV"),
		})
	})

	app.Get("/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			return helper.ErrorWithDetails(c, fiber.StatusServiceUnavailable, "Database non raggiungibile", err.Error())
		}
		return helper.Success(c, "ready", fiber.Map{"database": "connected"})
	})
}
