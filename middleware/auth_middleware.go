package middleware

import (
	"strings"

	"github.com/6ixminds/labs_backend/auth"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

const identityKey = "identity"

// Protected authenticates the bearer token. Development tokens are resolved
// first when dev is non-nil; everything else must be a valid HS256 access token.
func Protected(tokens *auth.TokenIssuer, dev *auth.DevProvider) fiber.Handler {
	verify := jwtware.New(jwtware.Config{
		SigningKey:    tokens.Secret(),
		SigningMethod: "HS256",
		Claims:        &auth.Claims{},
		Filter: func(c *fiber.Ctx) bool {
			_, ok := CurrentIdentity(c)
			return ok
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c, "Invalid or expired token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return unauthorized(c, "Invalid or expired token")
			}
			c.Locals(identityKey, claims.Identity())
			return c.Next()
		},
		ErrorHandler: jwtError,
	})

	return func(c *fiber.Ctx) error {
		if id, ok := dev.Resolve(bearerToken(c)); ok {
			c.Locals(identityKey, id)
		}
		return verify(c)
	}
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return unauthorized(c, "Missing or malformed token")
	}
	return unauthorized(c, "Invalid or expired token")
}

// RequireRoles rejects authenticated callers whose role is not listed.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := CurrentIdentity(c)
		if !ok {
			return unauthorized(c, "Authentication required")
		}
		if !id.HasRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "Forbidden: insufficient role",
			})
		}
		return c.Next()
	}
}

// CurrentIdentity returns the identity stored by Protected.
func CurrentIdentity(c *fiber.Ctx) (auth.Identity, bool) {
	id, ok := c.Locals(identityKey).(auth.Identity)
	return id, ok
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
