package handlers

import (
	"log/slog"

	"github.com/6ixminds/labs_backend/auth"
	"github.com/6ixminds/labs_backend/models"
	"github.com/6ixminds/labs_backend/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// AdminSocketHandler streams notifications to admin dashboards. The first
// frame a client sends must be {"type":"auth","token":"..."}.
type AdminSocketHandler struct {
	hub    *websocket.Hub
	tokens *auth.TokenIssuer
	dev    *auth.DevProvider
}

func NewAdminSocketHandler(hub *websocket.Hub, tokens *auth.TokenIssuer, dev *auth.DevProvider) *AdminSocketHandler {
	return &AdminSocketHandler{hub: hub, tokens: tokens, dev: dev}
}

// Upgrade rejects plain HTTP requests to the socket route.
func (h *AdminSocketHandler) Upgrade(c *fiber.Ctx) error {
	if websocketcontrib.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *AdminSocketHandler) Serve() fiber.Handler {
	return websocketcontrib.New(h.serve)
}

type authFrame struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

func (h *AdminSocketHandler) serve(c *websocketcontrib.Conn) {
	var frame authFrame
	if err := c.ReadJSON(&frame); err != nil || frame.Type != "auth" {
		slog.Warn("admin socket auth failed: missing auth frame", "error", err)
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		_ = c.Close()
		return
	}

	id, err := h.authenticate(frame.Token)
	if err != nil {
		slog.Warn("admin socket auth failed", "error", err)
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		_ = c.Close()
		return
	}

	// after Register only the hub writes to c
	_ = c.WriteJSON(websocket.Notification{Type: "ready", Data: id})

	client := &websocket.Client{Subject: id.Subject, Conn: c}
	h.hub.Register(client)
	defer func() {
		h.hub.Unregister(client)
		_ = c.Close()
	}()

	// Admins only listen; reading keeps the connection alive until it closes.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				slog.Debug("admin socket read error", "subject", id.Subject, "error", err)
			}
			return
		}
	}
}

func (h *AdminSocketHandler) authenticate(token string) (auth.Identity, error) {
	if id, ok := h.dev.Resolve(token); ok {
		return id, nil
	}

	id, err := h.tokens.Parse(token)
	if err != nil {
		return auth.Identity{}, err
	}
	if !id.HasRole(models.RoleAdmin, models.RoleSuperAdmin) {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	return id, nil
}
