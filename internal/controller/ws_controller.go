package controller

import (
	"agegate-admin-be/internal/pkg/serverutils"
	ws "agegate-admin-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// IWsController upgrades authenticated staff connections to the change
// stream. The token arrives via the "token" query parameter because
// browsers cannot set headers on websocket upgrades.
type IWsController interface {
	RegisterRoutes(r fiber.Router)
}

type wsController struct {
	hub            *ws.Hub
	authMiddleware fiber.Handler
}

func NewWsController(hub *ws.Hub, authMiddleware fiber.Handler) IWsController {
	return &wsController{
		hub:            hub,
		authMiddleware: authMiddleware,
	}
}

func (c *wsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ws")
	h.Use(func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		return ctx.Next()
	})
	h.Get("/changes", c.authMiddleware, websocket.New(func(conn *websocket.Conn) {
		adminId, _ := conn.Locals(serverutils.LocalsAdminId).(uuid.UUID)
		ws.ServeWs(c.hub, conn, adminId)
	}))
}
