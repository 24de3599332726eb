package controller

import (
	"ducochat-be/internal/dto"
	"ducochat-be/internal/pkg/logger"
	"ducochat-be/internal/pkg/serverutils"
	"ducochat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRatingController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

// ratingController receives ratings from the mobile app (open route) and
// serves the enriched list the dashboard table renders.
type ratingController struct {
	service service.IRatingService
	logger  logger.ILogger
}

func NewRatingController(service service.IRatingService, log logger.ILogger) IRatingController {
	return &ratingController{service: service, logger: log}
}

func (c *ratingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/ratings")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
}

func (c *ratingController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		c.logger.Error("RatingController", "Failed to list ratings", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON([]*dto.EnrichedRatingResponse{})
	}
	return ctx.JSON(res)
}

func (c *ratingController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRatingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *ratingController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateRatingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = uint(id)
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Calificación no encontrada"})
	}
	return ctx.JSON(res)
}

func (c *ratingController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.Delete(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Calificación no encontrada"})
	}
	return ctx.JSON(res)
}
