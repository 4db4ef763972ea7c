package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/research-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/models"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const currentUserKey = "current_user"

// Protected rejects requests without a valid bearer token.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.SecretKey)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Could not validate credentials",
			})
		},
	})
}

// CurrentUser resolves the verified token to a user record and stores it
// in the request context. Runs after Protected.
func CurrentUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Could not validate credentials",
			})
		}

		user, err := authService.Resolve(c.UserContext(), token.Raw)
		if err != nil {
			if errors.Is(err, services.ErrInactiveAccount) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error: true, Message: "Inactive user",
				})
			}
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Could not validate credentials",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// GetCurrentUser extracts the resolved user from the request context.
func GetCurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	if !ok {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}
