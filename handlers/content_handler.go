package handlers

import (
	"errors"

	"github.com/6ixminds/labs_backend/dto"
	"github.com/6ixminds/labs_backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type contentRequest[T any] interface {
	ToModel() T
	ApplyTo(*T)
}

// ContentConfig describes one site section served by ContentHandler.
type ContentConfig[T any, Resp any] struct {
	// Resource names the entity in error messages, e.g. "Project".
	Resource string
	// ImageField is the optional multipart image field; empty disables uploads.
	ImageField string
	// ImageKind prefixes uploaded image paths.
	ImageKind string
	// ImageURL points at the model field that stores the uploaded image URL.
	ImageURL   func(*T) *string
	ToResponse func(T) Resp
}

// ContentHandler serves list/get/create/update/delete for a site section.
// Requests are JSON or multipart; responses are mapped to camelCase.
type ContentHandler[T any, Req contentRequest[T], Resp any] struct {
	svc   *services.ContentService[T]
	media *services.MediaService
	cfg   ContentConfig[T, Resp]
	errorResponder
}

func NewContentHandler[T any, Req contentRequest[T], Resp any](
	svc *services.ContentService[T],
	media *services.MediaService,
	cfg ContentConfig[T, Resp],
	exposeErrors bool,
) *ContentHandler[T, Req, Resp] {
	return &ContentHandler[T, Req, Resp]{
		svc:            svc,
		media:          media,
		cfg:            cfg,
		errorResponder: errorResponder{exposeErrors: exposeErrors},
	}
}

func (h *ContentHandler[T, Req, Resp]) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext())
	if err != nil {
		return h.respond(c, err, h.cfg.Resource)
	}
	return okList(c, dto.MapSlice(items, h.cfg.ToResponse))
}

func (h *ContentHandler[T, Req, Resp]) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid id")
	}

	item, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return h.respond(c, err, h.cfg.Resource)
	}
	return ok(c, fiber.StatusOK, h.cfg.ToResponse(*item))
}

func (h *ContentHandler[T, Req, Resp]) Create(c *fiber.Ctx) error {
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Cannot parse request body")
	}
	if err := services.Validate(req); err != nil {
		return h.respond(c, err, h.cfg.Resource)
	}

	item := req.ToModel()
	image, err := h.uploadImage(c)
	if err != nil {
		return h.respond(c, err, h.cfg.Resource)
	}
	if image != nil {
		*h.cfg.ImageURL(&item) = image.URL
	}

	if err := h.svc.Create(c.UserContext(), &item); err != nil {
		h.media.Discard(c.UserContext(), image)
		return h.respond(c, err, h.cfg.Resource)
	}
	return ok(c, fiber.StatusCreated, h.cfg.ToResponse(item))
}

func (h *ContentHandler[T, Req, Resp]) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req Req
	if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return fail(c, fiber.StatusBadRequest, "Cannot parse request body")
	}
	if err := services.ValidatePartial(req); err != nil {
		return h.respond(c, err, h.cfg.Resource)
	}

	// nothing is uploaded for a record that does not exist
	if _, err := h.svc.Get(c.UserContext(), id); err != nil {
		return h.respond(c, err, h.cfg.Resource)
	}

	image, err := h.uploadImage(c)
	if err != nil {
		return h.respond(c, err, h.cfg.Resource)
	}

	item, err := h.svc.Update(c.UserContext(), id, func(item *T) {
		req.ApplyTo(item)
		if image != nil {
			*h.cfg.ImageURL(item) = image.URL
		}
	})
	if err != nil {
		h.media.Discard(c.UserContext(), image)
		return h.respond(c, err, h.cfg.Resource)
	}
	return ok(c, fiber.StatusOK, h.cfg.ToResponse(*item))
}

func (h *ContentHandler[T, Req, Resp]) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return h.respond(c, err, h.cfg.Resource)
	}
	return okMessage(c, h.cfg.Resource+" deleted successfully")
}

// uploadImage stores the optional image field. It returns nil when the
// section has no image or the request carries none.
func (h *ContentHandler[T, Req, Resp]) uploadImage(c *fiber.Ctx) (*services.StoredImage, error) {
	if h.cfg.ImageField == "" || h.cfg.ImageURL == nil || h.media == nil {
		return nil, nil
	}

	artifact, err := formArtifact(c, h.cfg.ImageField)
	if err != nil || artifact == nil {
		return nil, err
	}
	return h.media.Upload(c.UserContext(), h.cfg.ImageKind, artifact)
}
