package handlers

import (
	"github.com/6ixminds/labs_backend/dto"
	"github.com/6ixminds/labs_backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MessageHandler struct {
	svc *services.MessageService
	errorResponder
}

func NewMessageHandler(svc *services.MessageService, exposeErrors bool) *MessageHandler {
	return &MessageHandler{svc: svc, errorResponder: errorResponder{exposeErrors: exposeErrors}}
}

// Submit accepts a contact-form message from the public site.
func (h *MessageHandler) Submit(c *fiber.Ctx) error {
	var req dto.MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse request body")
	}

	if _, err := h.svc.Submit(c.UserContext(), req); err != nil {
		return h.respond(c, err, "Message")
	}
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Message: "Thanks for reaching out, we will get back to you soon",
	})
}

func (h *MessageHandler) List(c *fiber.Ctx) error {
	msgs, err := h.svc.List(c.UserContext())
	if err != nil {
		return h.respond(c, err, "Message")
	}
	return okList(c, dto.MapSlice(msgs, dto.FromMessage))
}

func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.svc.MarkRead(c.UserContext(), id); err != nil {
		return h.respond(c, err, "Message")
	}
	return okMessage(c, "Message marked as read")
}

func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return h.respond(c, err, "Message")
	}
	return okMessage(c, "Message deleted successfully")
}
