package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"

	"travel-cms/errors"
)

const identityKey = "identity"

// Authorize accepts requests carrying a valid admin token signed with sign.
func Authorize(sign string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:     []byte(sign),
		ErrorHandler:   jwtError,
		SuccessHandler: requireAdmin,
		ContextKey:     identityKey,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return errors.RaiseBadRequestError(c, "Missing or malformed JWT")
	}
	return errors.RaisePermissionsError(c, "Invalid or expired JWT")
}

func requireAdmin(c *fiber.Ctx) error {
	if !isAdminRole(c) {
		return errors.RaiseError(c, fiber.StatusForbidden, "only admin can perform this operation")
	}
	return c.Next()
}

func isAdminRole(c *fiber.Ctx) bool {
	token, ok := c.Locals(identityKey).(*jwt.Token)
	if !ok {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	return claims["role"] == "admin"
}
