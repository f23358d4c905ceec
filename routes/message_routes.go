package routes

import (
	"github.com/6ixminds/labs_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func MessageRoutes(api fiber.Router, h *handlers.MessageHandler, staff []fiber.Handler, limit fiber.Handler) {
	messages := api.Group("/messages")

	messages.Post("/", limit, h.Submit)

	messages.Get("/", with(staff, h.List)...)
	messages.Patch("/:id/read", with(staff, h.MarkRead)...)
	messages.Delete("/:id", with(staff, h.Delete)...)
}
