package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("CERT_ORG_CODE", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("EXPOSE_ERRORS", "")

	cfg := FromEnv()

	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.Equal(t, "6ML", cfg.CertOrgCode)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "cloudinary", cfg.Storage.Driver)
	assert.True(t, cfg.ExposeErrors)
}

func TestFromEnv_ProductionDisablesDevTokens(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DEV_TOKENS_ENABLED", "true")
	t.Setenv("EXPOSE_ERRORS", "")

	cfg := FromEnv()

	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.DevTokensEnabled)
	assert.False(t, cfg.ExposeErrors)
}

func TestFromEnv_TrimsPublicSiteURL(t *testing.T) {
	t.Setenv("PUBLIC_SITE_URL", "https://labs.example.com/")

	cfg := FromEnv()

	assert.Equal(t, "https://labs.example.com", cfg.PublicSiteURL)
}

func TestValidate(t *testing.T) {
	t.Run("production requires secrets", func(t *testing.T) {
		cfg := Config{
			AppEnv:      EnvProduction,
			CertOrgCode: "6ML",
			Storage:     StorageConfig{Driver: "cloudinary", CloudinaryURL: "cloudinary://k:s@demo"},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})

	t.Run("every environment requires a signing secret", func(t *testing.T) {
		for _, env := range []string{EnvDevelopment, "staging"} {
			cfg := Config{
				AppEnv:      env,
				CertOrgCode: "6ML",
				Storage:     StorageConfig{Driver: "cloudinary", CloudinaryURL: "cloudinary://k:s@demo"},
			}
			err := cfg.Validate()
			require.Error(t, err, env)
			assert.Contains(t, err.Error(), "JWT_SECRET", env)
		}
	})

	t.Run("s3 driver requires endpoint", func(t *testing.T) {
		cfg := Config{AppEnv: EnvDevelopment, JWTSecret: "dev-secret", CertOrgCode: "6ML", Storage: StorageConfig{Driver: "s3"}}
		require.Error(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := Config{AppEnv: EnvDevelopment, JWTSecret: "dev-secret", CertOrgCode: "6ML", Storage: StorageConfig{Driver: "ftp"}}
		require.Error(t, cfg.Validate())
	})

	t.Run("valid development config", func(t *testing.T) {
		cfg := Config{
			AppEnv:      EnvDevelopment,
			JWTSecret:   "dev-secret",
			CertOrgCode: "6ML",
			Storage:     StorageConfig{Driver: "cloudinary", CloudinaryURL: "cloudinary://k:s@demo"},
		}
		require.NoError(t, cfg.Validate())
	})
}
