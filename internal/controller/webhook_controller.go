package controller

import (
	"encoding/json"

	"ducochat-be/internal/config"
	"ducochat-be/internal/dto"
	"ducochat-be/internal/pkg/logger"
	"ducochat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Verify(ctx *fiber.Ctx) error
	Receive(ctx *fiber.Ctx) error
}

// webhookController terminates the WhatsApp Cloud API callback. Receive only
// enqueues the message; the bot worker replies asynchronously so Meta gets
// its 200 within the delivery deadline.
type webhookController struct {
	cfg       *config.Config
	publisher service.IPublisherService
	logger    logger.ILogger
}

func NewWebhookController(cfg *config.Config, publisher service.IPublisherService, log logger.ILogger) IWebhookController {
	return &webhookController{cfg: cfg, publisher: publisher, logger: log}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	r.Get("/webhook", c.Verify)
	r.Post("/webhook", c.Receive)
}

func (c *webhookController) Verify(ctx *fiber.Ctx) error {
	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	challenge := ctx.Query("hub.challenge")

	if mode == "subscribe" && token == c.cfg.WhatsApp.VerifyToken {
		c.logger.Info("WebhookController", "Webhook verified", nil)
		return ctx.Status(fiber.StatusOK).SendString(challenge)
	}
	return ctx.SendStatus(fiber.StatusForbidden)
}

func (c *webhookController) Receive(ctx *fiber.Ctx) error {
	var payload dto.WebhookPayload
	if err := ctx.BodyParser(&payload); err != nil {
		c.logger.Warn("WebhookController", "Unreadable webhook payload", map[string]interface{}{"error": err.Error()})
		return ctx.SendStatus(fiber.StatusOK)
	}

	from, text, ok := payload.FirstMessage()
	if !ok {
		// Status callbacks and media messages are acknowledged but ignored.
		return ctx.SendStatus(fiber.StatusOK)
	}

	raw := make([]byte, len(ctx.Body()))
	copy(raw, ctx.Body())

	job, err := json.Marshal(dto.InboundMessageJob{From: from, Text: text, RawPayload: raw})
	if err != nil {
		return err
	}
	if err := c.publisher.Publish(ctx.Context(), job); err != nil {
		c.logger.Error("WebhookController", "Failed to enqueue inbound message", map[string]interface{}{
			"from":  from,
			"error": err.Error(),
		})
		return ctx.SendStatus(fiber.StatusInternalServerError)
	}

	return ctx.SendStatus(fiber.StatusOK)
}
