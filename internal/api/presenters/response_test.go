package presenters

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/saulluiz/api-recipe-generator/domain"
	"github.com/saulluiz/api-recipe-generator/internal/utils/storage"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad uuid", domain.ErrParseUUID, fiber.StatusBadRequest},
		{"oversized upload", storage.ErrFileTooLarge, fiber.StatusBadRequest},
		{"disallowed content type", storage.ErrContentTypeNotAllowed, fiber.StatusBadRequest},
		{"missing token", domain.ErrTokenNotFound, fiber.StatusUnauthorized},
		{"expired token", domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{"bad credentials", domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"foreign recipe", domain.ErrRecipeForbidden, fiber.StatusForbidden},
		{"missing user", domain.ErrUserNotFound, fiber.StatusNotFound},
		{"missing ingredient", domain.ErrIngredientNotFound, fiber.StatusNotFound},
		{"missing recipe", domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{"duplicate username", domain.ErrUsernameTaken, fiber.StatusConflict},
		{"duplicate email", domain.ErrEmailTaken, fiber.StatusConflict},
		{"anything else", errors.New("db exploded"), fiber.StatusInternalServerError},
		{"wrapped sentinel", errors.Join(errors.New("context"), domain.ErrRecipeNotFound), fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusOf(tc.err))
		})
	}
}
