package controller

import (
	"time"

	"ducochat-be/internal/config"
	ws "ducochat-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IOpsController interface {
	RegisterRoutes(r fiber.Router)
	Status(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	Debug(ctx *fiber.Ctx) error
	WebhookURL(ctx *fiber.Ctx) error
}

// opsController exposes the liveness and deployment-inspection endpoints the
// dashboard and uptime monitors poll, plus the websocket upgrade for the
// realtime feed.
type opsController struct {
	cfg *config.Config
	hub *ws.Hub
}

func NewOpsController(cfg *config.Config, hub *ws.Hub) IOpsController {
	return &opsController{cfg: cfg, hub: hub}
}

func (c *opsController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Status)
	r.Get("/api/health", c.Health)
	r.Get("/api/debug", c.Debug)
	r.Get("/api/webhook-url", c.WebhookURL)

	r.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	r.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		ws.ServeWs(c.hub, conn)
	}))
}

func (c *opsController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "Bot activo ✅",
		"mensaje":   "DucoChat funcionando correctamente",
		"webhook":   "/webhook",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (c *opsController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (c *opsController) Debug(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"conexiones_activas": c.hub.ClientCount(),
		"entorno":            c.cfg.App.Environment,
		"timestamp":          time.Now().Format(time.RFC3339),
	})
}

func (c *opsController) WebhookURL(ctx *fiber.Ctx) error {
	base := c.cfg.App.BaseURL
	return ctx.JSON(fiber.Map{
		"backend_url": base,
		"webhook_url": base + "/webhook",
		"api_base":    base + "/api",
		"status":      "activo",
	})
}
