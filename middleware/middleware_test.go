package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/6ixminds/labs_backend/auth"
	"github.com/6ixminds/labs_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(tokens *auth.TokenIssuer, dev *auth.DevProvider, roles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/private", Protected(tokens, dev), RequireRoles(roles...), func(c *fiber.Ctx) error {
		id, _ := CurrentIdentity(c)
		return c.JSON(id)
	})
	return app
}

func call(t *testing.T, app *fiber.App, token string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestProtected(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	admin := models.Admin{ID: uuid.New(), Email: "ops@6ixminds.com", Role: models.RoleAdmin}
	adminToken, _, err := tokens.Issue(admin)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		resp, body := call(t, newProtectedApp(tokens, nil, models.RoleAdmin), "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, false, body["success"])
	})

	t.Run("invalid token", func(t *testing.T) {
		resp, _ := call(t, newProtectedApp(tokens, nil, models.RoleAdmin), "garbage.token.here")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token with allowed role", func(t *testing.T) {
		resp, body := call(t, newProtectedApp(tokens, nil, models.RoleAdmin, models.RoleSuperAdmin), adminToken)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, admin.ID.String(), body["id"])
		assert.Equal(t, models.RoleAdmin, body["role"])
	})

	t.Run("valid token with wrong role", func(t *testing.T) {
		resp, _ := call(t, newProtectedApp(tokens, nil, models.RoleSuperAdmin), adminToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("dev token when enabled", func(t *testing.T) {
		dev := auth.NewDevProvider(true, "demo_")
		resp, body := call(t, newProtectedApp(tokens, dev, models.RoleSuperAdmin), "demo_local")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, models.RoleSuperAdmin, body["role"])
	})

	t.Run("dev token when disabled", func(t *testing.T) {
		dev := auth.NewDevProvider(false, "demo_")
		resp, _ := call(t, newProtectedApp(tokens, dev, models.RoleSuperAdmin), "demo_local")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Get("/", RateLimiter("test", "", 2, time.Minute), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
