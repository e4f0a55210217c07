package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"giuaschool_backend/internals/configs"
	"giuaschool_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the shared chain. The request timeout follows
// the database statement timeout.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(RequestID(time.Duration(configs.GetEnvInt("DB_STATEMENT_TIMEOUT_MS", 5000)) * time.Millisecond))
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
