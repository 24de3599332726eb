package controller

import (
	"ducochat-be/internal/dto"
	"ducochat-be/internal/pkg/logger"
	"ducochat-be/internal/pkg/serverutils"
	"ducochat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEndUserController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

// endUserController manages student records. Creation and updates come
// from the mobile app during onboarding, so these routes stay open.
type endUserController struct {
	service service.IEndUserService
	logger  logger.ILogger
}

func NewEndUserController(service service.IEndUserService, log logger.ILogger) IEndUserController {
	return &endUserController{service: service, logger: log}
}

func (c *endUserController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/users")
	h.Get("", c.GetAll)
	h.Get(":rut", c.Show)
	h.Post("", c.Create)
	h.Put(":rut", c.Update)
	h.Delete(":rut", serverutils.JwtMiddleware, c.Delete)
}

func (c *endUserController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		c.logger.Error("EndUserController", "Failed to list users", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON([]*dto.EndUserResponse{})
	}
	return ctx.JSON(res)
}

func (c *endUserController) Show(ctx *fiber.Ctx) error {
	rut := ctx.Params("rut")

	res, err := c.service.Show(ctx.Context(), rut)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}
	return ctx.JSON(res)
}

func (c *endUserController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEndUserRequest
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

func (c *endUserController) Update(ctx *fiber.Ctx) error {
	rut := ctx.Params("rut")

	var req dto.UpdateEndUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), rut, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}
	return ctx.JSON(res)
}

func (c *endUserController) Delete(ctx *fiber.Ctx) error {
	rut := ctx.Params("rut")

	res, err := c.service.Delete(ctx.Context(), rut)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}
	return ctx.JSON(res)
}
