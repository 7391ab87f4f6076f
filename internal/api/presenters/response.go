package presenters

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/saulluiz/api-recipe-generator/domain"
	"github.com/saulluiz/api-recipe-generator/internal/utils/storage"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(status).JSON(res)
}

// FromError maps domain errors onto HTTP status codes so handlers signal
// 400/401/403/404/409 consistently.
func FromError(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, statusOf(err), message, err)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrContentTypeNotAllowed):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrRecipeForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
