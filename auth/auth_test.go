package auth

import (
	"testing"
	"time"

	"github.com/6ixminds/labs_backend/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	admin := models.Admin{ID: uuid.New(), Email: "ops@6ixminds.com", Role: models.RoleAdmin}

	raw, expiresAt, err := issuer.Issue(admin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	id, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), id.Subject)
	assert.Equal(t, "ops@6ixminds.com", id.Email)
	assert.Equal(t, models.RoleAdmin, id.Role)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	admin := models.Admin{ID: uuid.New(), Role: models.RoleAdmin}

	t.Run("wrong secret", func(t *testing.T) {
		raw, _, err := NewTokenIssuer("other", time.Hour).Issue(admin)
		require.NoError(t, err)
		_, err = issuer.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenIssuer("test-secret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		raw, _, err := old.Issue(admin)
		require.NoError(t, err)
		_, err = issuer.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: models.RoleSuperAdmin}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestDevProvider(t *testing.T) {
	t.Run("disabled provider is nil and resolves nothing", func(t *testing.T) {
		p := NewDevProvider(false, "demo_")
		assert.Nil(t, p)
		_, ok := p.Resolve("demo_anything")
		assert.False(t, ok)
	})

	t.Run("prefixed tokens resolve to super-admin", func(t *testing.T) {
		p := NewDevProvider(true, "demo_")
		id, ok := p.Resolve("demo_local")
		require.True(t, ok)
		assert.Equal(t, models.RoleSuperAdmin, id.Role)
		assert.True(t, id.HasRole(models.RoleAdmin, models.RoleSuperAdmin))
	})

	t.Run("other tokens fall through", func(t *testing.T) {
		_, ok := NewDevProvider(true, "demo_").Resolve("eyJhbGciOi")
		assert.False(t, ok)
	})
}
