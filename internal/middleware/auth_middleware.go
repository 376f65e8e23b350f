package middleware

import (
	"strings"

	"fittrack/internal/apperrors"
	"fittrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the Locals key under which the authenticated user id is
// stored for downstream handlers.
const UserIDKey = "user_id"

// AuthRequired is a Fiber middleware that verifies the bearer token and
// attaches the decoded user id to the request context. It is the only auth
// gate: it does not check that the token's subject owns the resource named
// in the path.
func AuthRequired(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.Auth("Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return apperrors.Auth("Authorization header format must be 'Bearer <token>'")
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			return err
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
