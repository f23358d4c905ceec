package handlers

import (
	"github.com/6ixminds/labs_backend/dto"
	"github.com/6ixminds/labs_backend/middleware"
	"github.com/6ixminds/labs_backend/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	admins *services.AdminService
	errorResponder
}

func NewAuthHandler(admins *services.AdminService, exposeErrors bool) *AuthHandler {
	return &AuthHandler{admins: admins, errorResponder: errorResponder{exposeErrors: exposeErrors}}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse request body")
	}

	res, err := h.admins.Login(c.UserContext(), req)
	if err != nil {
		return h.respond(c, err, "Admin")
	}
	return ok(c, fiber.StatusOK, res)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, found := middleware.CurrentIdentity(c)
	if !found {
		return fail(c, fiber.StatusUnauthorized, "Authentication required")
	}
	return ok(c, fiber.StatusOK, id)
}

func (h *AuthHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.admins.List(c.UserContext())
	if err != nil {
		return h.respond(c, err, "Admin")
	}
	return okList(c, dto.MapSlice(admins, dto.FromAdmin))
}

func (h *AuthHandler) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse request body")
	}

	admin, err := h.admins.Create(c.UserContext(), req)
	if err != nil {
		return h.respond(c, err, "Admin")
	}
	return ok(c, fiber.StatusCreated, dto.FromAdmin(*admin))
}
