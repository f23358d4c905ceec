package routes

import (
	"github.com/gofiber/fiber/v2"
)

type contentHandler interface {
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// ContentRoutes mounts a site section: public reads, staff writes.
func ContentRoutes(group fiber.Router, h contentHandler, staff []fiber.Handler) {
	group.Get("/", h.List)
	group.Get("/:id", h.Get)

	group.Post("/", with(staff, h.Create)...)
	group.Put("/:id", with(staff, h.Update)...)
	group.Delete("/:id", with(staff, h.Delete)...)
}
