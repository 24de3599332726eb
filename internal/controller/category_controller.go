package controller

import (
	"ducochat-be/internal/dto"
	"ducochat-be/internal/pkg/logger"
	"ducochat-be/internal/pkg/serverutils"
	"ducochat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	service service.ICategoryService
	logger  logger.ILogger
}

func NewCategoryController(service service.ICategoryService, log logger.ILogger) ICategoryController {
	return &categoryController{service: service, logger: log}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/categories")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
}

// GetAll returns a bare array; the dashboard maps over it directly and
// expects [] even on failure.
func (c *categoryController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		c.logger.Error("CategoryController", "Failed to list categories", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON([]*dto.CategoryResponse{})
	}
	return ctx.JSON(res)
}

func (c *categoryController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.Show(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Categoría no encontrada"})
	}
	return ctx.JSON(res)
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
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

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateCategoryRequest
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
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Categoría no encontrada"})
	}
	return ctx.JSON(res)
}

func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.Delete(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Categoría no encontrada"})
	}
	return ctx.JSON(res)
}
