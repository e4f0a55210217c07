package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Success answers 200 with data.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// ValidationError answers 400 with the field/message-key map of a Validate call.
func ValidationError(c *fiber.Ctx, err error) error {
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		return Error(c, fiber.StatusBadRequest, "Dati non validi")
	}
	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validazione non riuscita", verrs)
}
