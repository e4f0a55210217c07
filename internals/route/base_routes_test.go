package routes

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHealth(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, func(context.Context) error { return errors.New("down") })

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name string
		ping Pinger
		want int
	}{
		{"ok", func(context.Context) error { return nil }, fiber.StatusOK},
		{"down", func(context.Context) error { return errors.New("connection refused") }, fiber.StatusServiceUnavailable},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			app := fiber.New()
			SetupRoutes(app, c.ping)
			resp, err := app.Test(httptest.NewRequest("GET", "/ready", nil))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != c.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, c.want)
			}
		})
	}
}
