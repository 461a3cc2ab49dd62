package presenters

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ErrorResponse reports the first validation failure when err is a
// validator.ValidationErrors, otherwise the error message itself.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var detail string
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			detail = validationErrors[0].Error()
		} else {
			detail = err.Error()
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
}
