package routes

import (
	"github.com/6ixminds/labs_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(api fiber.Router, h *handlers.AuthHandler, protected fiber.Handler, superAdmin []fiber.Handler, limit fiber.Handler) {
	authGroup := api.Group("/auth")
	authGroup.Post("/login", limit, h.Login)
	authGroup.Get("/me", protected, h.Me)

	admins := api.Group("/admins")
	admins.Get("/", with(superAdmin, h.ListAdmins)...)
	admins.Post("/", with(superAdmin, h.CreateAdmin)...)
}
