package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulluiz/api-recipe-generator/domain"
	"github.com/saulluiz/api-recipe-generator/internal/api/presenters"
	"github.com/saulluiz/api-recipe-generator/pkg/jwt"
	"github.com/saulluiz/api-recipe-generator/pkg/user"
)

type (
	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService, userRepository user.UserRepository) fiber.Handler
		CORSMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware resolves the bearer token into an authenticated user. A bad
// token and a malformed subject are both unauthorized, a well-formed subject
// with no matching user is not-found.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, userRepository user.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		sub, err := jwtService.GetSubject(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, err)
		}

		if _, err := uuid.Parse(sub); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenInvalid)
		}

		if _, err := userRepository.GetByID(c.Context(), sub); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetUser, domain.ErrUserNotFound)
			}
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetUser, err)
		}

		c.Locals("user_id", sub)
		return c.Next()
	}
}
