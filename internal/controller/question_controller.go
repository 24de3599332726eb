package controller

import (
	"ducochat-be/internal/dto"
	"ducochat-be/internal/pkg/logger"
	"ducochat-be/internal/pkg/serverutils"
	"ducochat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetActive(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type questionController struct {
	service service.IQuestionService
	logger  logger.ILogger
}

func NewQuestionController(service service.IQuestionService, log logger.ILogger) IQuestionController {
	return &questionController{service: service, logger: log}
}

func (c *questionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/questions")
	h.Get("", c.GetAll)
	h.Get("/active", c.GetActive)
	h.Get(":id", c.Show)
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Put(":id/toggle", serverutils.JwtMiddleware, c.Toggle)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
}

func (c *questionController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		c.logger.Error("QuestionController", "Failed to list questions", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON([]*dto.QuestionResponse{})
	}
	return ctx.JSON(res)
}

func (c *questionController) GetActive(ctx *fiber.Ctx) error {
	res, err := c.service.GetActive(ctx.Context())
	if err != nil {
		c.logger.Error("QuestionController", "Failed to list active questions", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON([]*dto.QuestionResponse{})
	}
	return ctx.JSON(res)
}

func (c *questionController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.Show(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}
	return ctx.JSON(res)
}

func (c *questionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
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

func (c *questionController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateQuestionRequest
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
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}
	return ctx.JSON(res)
}

func (c *questionController) Toggle(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.Toggle(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}
	return ctx.JSON(res)
}

func (c *questionController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.Delete(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pregunta no encontrada"})
	}
	return ctx.JSON(res)
}
