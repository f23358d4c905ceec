package handlers

import (
	"errors"

	"github.com/6ixminds/labs_backend/services"
	"github.com/gofiber/fiber/v2"
)

type CertificateHandler struct {
	svc *services.CertificateService
	errorResponder
}

func NewCertificateHandler(svc *services.CertificateService, exposeErrors bool) *CertificateHandler {
	return &CertificateHandler{svc: svc, errorResponder: errorResponder{exposeErrors: exposeErrors}}
}

func (h *CertificateHandler) List(c *fiber.Ctx) error {
	certs, err := h.svc.List(c.UserContext())
	if err != nil {
		return h.respond(c, err, "Certificate")
	}
	return okList(c, certs)
}

// Verify is public: a miss answers 404 with valid=false.
func (h *CertificateHandler) Verify(c *fiber.Ctx) error {
	cert, err := h.svc.Verify(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"valid":   false,
				"message": "Certificate not found or invalid",
			})
		}
		return h.respond(c, err, "Certificate")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"valid":   true,
		"data":    cert,
	})
}

func (h *CertificateHandler) Issue(c *fiber.Ctx) error {
	in, err := parseCertificateInput(c)
	if err != nil {
		return h.respond(c, err, "Certificate")
	}

	res, err := h.svc.Issue(c.UserContext(), in)
	if err != nil {
		return h.respond(c, err, "Certificate")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":         true,
		"data":            res.Certificate,
		"verificationUrl": res.VerificationURL,
		"message":         "Certificate issued successfully",
	})
}

func (h *CertificateHandler) Update(c *fiber.Ctx) error {
	in, err := parseCertificateInput(c)
	if err != nil {
		return h.respond(c, err, "Certificate")
	}

	cert, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.respond(c, err, "Certificate")
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"data":            cert,
		"verificationUrl": h.svc.VerificationURL(cert.CertificateID),
		"message":         "Certificate updated successfully",
	})
}

func (h *CertificateHandler) Revoke(c *fiber.Ctx) error {
	if err := h.svc.Revoke(c.UserContext(), c.Params("id")); err != nil {
		return h.respond(c, err, "Certificate")
	}
	return okMessage(c, "Certificate revoked successfully")
}

func parseCertificateInput(c *fiber.Ctx) (services.CertificateInput, error) {
	var in services.CertificateInput
	if err := c.BodyParser(&in.Form); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return in, &services.ValidationError{Message: "Invalid form data"}
	}

	var err error
	if in.Photo, err = formArtifact(c, "profilePhoto"); err != nil {
		return in, err
	}
	if in.Document, err = formArtifact(c, "certificateFile"); err != nil {
		return in, err
	}
	return in, nil
}
