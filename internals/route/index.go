package routes

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

// Pinger checks that the database answers.
type Pinger func(ctx context.Context) error

func SetupRoutes(app *fiber.App, ping Pinger) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, ping)
}
