package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"giuaschool_backend/internals/configs"
	"giuaschool_backend/internals/helpers"
)

// GlobalRateLimiter caps requests per IP, RATE_LIMIT_MAX per minute (default 100).
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        configs.GetEnvInt("RATE_LIMIT_MAX", 100),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.Error(c, fiber.StatusTooManyRequests, "Troppe richieste, riprovare più tardi.")
		},
	})
}
