package handlers

import (
	"errors"
	"log/slog"

	"github.com/6ixminds/labs_backend/services"
	"github.com/gofiber/fiber/v2"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Success: true, Data: data})
}

func okList[T any](c *fiber.Ctx, items []T) error {
	n := len(items)
	if items == nil {
		items = []T{}
	}
	return c.JSON(Envelope{Success: true, Data: items, Count: &n})
}

func okMessage(c *fiber.Ctx, msg string) error {
	return c.JSON(Envelope{Success: true, Message: msg})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: msg})
}

// errorResponder turns service errors into envelope responses. Upstream
// failures carry their raw message only when exposeErrors is set.
type errorResponder struct {
	exposeErrors bool
}

func (r errorResponder) respond(c *fiber.Ctx, err error, resource string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return fail(c, fiber.StatusBadRequest, verr.Message)
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrConflict):
		return fail(c, fiber.StatusConflict, resource+" conflicts with an existing record, please retry")
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	if r.exposeErrors {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

// ErrorHandler is the app-wide fallback for errors returned by handlers
// and middleware.
func ErrorHandler(exposeErrors bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fail(c, fe.Code, fe.Message)
		}
		return errorResponder{exposeErrors: exposeErrors}.respond(c, err, "Resource")
	}
}
