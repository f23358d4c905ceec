package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
)

// RateLimiter limits requests per client IP under the given bucket name.
// Counters live in Redis when redisURL is set so they are shared between
// instances, in memory otherwise.
func RateLimiter(bucket, redisURL string, max int, window time.Duration) fiber.Handler {
	cfg := limiter.Config{
		KeyGenerator: func(c *fiber.Ctx) string {
			return bucket + ":" + c.IP()
		},
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests, please try again later",
			})
		},
	}

	if redisURL != "" {
		cfg.Storage = fiberredis.New(fiberredis.Config{URL: redisURL})
		slog.Info("rate limiter using redis storage", "bucket", bucket)
	}

	return limiter.New(cfg)
}
