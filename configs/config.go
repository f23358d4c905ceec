package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppEnv       string
	Port         string
	DatabaseURL  string
	CorsOrigins  string
	ExposeErrors bool

	JWTSecret        string
	JWTTTL           time.Duration
	DevTokensEnabled bool
	DevTokenPrefix   string

	CertOrgCode   string
	PublicSiteURL string

	Storage StorageConfig

	RedisURL    string
	KafkaBroker string
	KafkaTopic  string

	BrevoAPIKey      string
	EmailSender      string
	EmailSenderName  string
	AdminNotifyEmail string
	DigestSchedule   string

	AdminEmail    string
	AdminPassword string
	AdminFullName string

	LogLevel  string
	LogFormat string
	LogFile   string
}

type StorageConfig struct {
	Driver            string
	CloudinaryURL     string
	S3Endpoint        string
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicBaseURL   string
	PhotoContainer    string
	DocumentContainer string
	MediaContainer    string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() Config {
	appEnv := strings.ToLower(getEnv("APP_ENV", EnvDevelopment))

	cfg := Config{
		AppEnv:       appEnv,
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		CorsOrigins:  getEnv("CORS_ORIGINS", "*"),
		ExposeErrors: getBool("EXPOSE_ERRORS", appEnv != EnvProduction),

		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTTTL:           time.Duration(getInt("JWT_TTL_HOURS", 24)) * time.Hour,
		DevTokensEnabled: getBool("DEV_TOKENS_ENABLED", false),
		DevTokenPrefix:   getEnv("DEV_TOKEN_PREFIX", "demo_"),

		CertOrgCode:   getEnv("CERT_ORG_CODE", "6ML"),
		PublicSiteURL: strings.TrimRight(getEnv("PUBLIC_SITE_URL", "https://6ixminds.com"), "/"),

		Storage: StorageConfig{
			Driver:            strings.ToLower(getEnv("STORAGE_DRIVER", "cloudinary")),
			CloudinaryURL:     os.Getenv("CLOUDINARY_URL"),
			S3Endpoint:        os.Getenv("S3_ENDPOINT"),
			S3Region:          getEnv("S3_REGION", "us-east-1"),
			S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			S3PublicBaseURL:   strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
			PhotoContainer:    getEnv("PHOTO_CONTAINER", "profile-photos"),
			DocumentContainer: getEnv("DOCUMENT_CONTAINER", "certificates"),
			MediaContainer:    getEnv("MEDIA_CONTAINER", "media"),
		},

		RedisURL:    os.Getenv("REDIS_URL"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "labs.events"),

		BrevoAPIKey:      os.Getenv("BREVO_API_KEY"),
		EmailSender:      os.Getenv("EMAIL_SENDER"),
		EmailSenderName:  getEnv("EMAIL_SENDER_NAME", "6ixminds Labs"),
		AdminNotifyEmail: os.Getenv("ADMIN_NOTIFY_EMAIL"),
		DigestSchedule:   getEnv("DIGEST_SCHEDULE", "0 8 * * *"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminFullName: getEnv("ADMIN_FULL_NAME", "Super Admin"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		LogFile:   os.Getenv("LOG_FILE"),
	}

	// dev identities never exist in production
	if cfg.IsProduction() {
		cfg.DevTokensEnabled = false
	}

	return cfg
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c Config) Validate() error {
	var errs []error
	// HS256 accepts an empty key, so an unset secret would let anyone sign tokens
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.IsProduction() {
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required in production"))
		}
	}
	switch c.Storage.Driver {
	case "cloudinary":
		if c.Storage.CloudinaryURL == "" {
			errs = append(errs, errors.New("CLOUDINARY_URL is required for the cloudinary storage driver"))
		}
	case "s3":
		if c.Storage.S3Endpoint == "" || c.Storage.S3PublicBaseURL == "" {
			errs = append(errs, errors.New("S3_ENDPOINT and S3_PUBLIC_BASE_URL are required for the s3 storage driver"))
		}
	default:
		errs = append(errs, errors.New("STORAGE_DRIVER must be cloudinary or s3"))
	}
	if c.CertOrgCode == "" {
		errs = append(errs, errors.New("CERT_ORG_CODE must not be empty"))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}
