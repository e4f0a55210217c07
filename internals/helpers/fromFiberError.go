package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError is the app's error handler: a *fiber.Error keeps its code,
// anything else becomes a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
