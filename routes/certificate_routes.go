package routes

import (
	"github.com/6ixminds/labs_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func CertificateRoutes(api fiber.Router, h *handlers.CertificateHandler, staff []fiber.Handler, limit fiber.Handler) {
	certs := api.Group("/certificates")

	certs.Get("/verify/:id", limit, h.Verify)

	certs.Get("/", with(staff, h.List)...)
	certs.Post("/", with(staff, h.Issue)...)
	certs.Put("/:id", with(staff, h.Update)...)
	certs.Delete("/:id", with(staff, h.Revoke)...)
}
