package serverutils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by later handlers into a
// response: the JSON envelope under /api, plain text elsewhere.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		var validationErr *ValidationError
		switch {
		case errors.As(err, &validationErr):
			code = fiber.StatusUnprocessableEntity
			message = validationErr.Error()
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if strings.HasPrefix(ctx.Path(), "/api") {
			return ctx.Status(code).JSON(ErrorResponse(code, message))
		}
		return ctx.Status(code).SendString(message)
	}
}
