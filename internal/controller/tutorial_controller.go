package controller

import (
	"ducochat-be/internal/dto"
	"ducochat-be/internal/pkg/logger"
	"ducochat-be/internal/pkg/serverutils"
	"ducochat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITutorialController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ShowByRut(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Completed(ctx *fiber.Ctx) error
	UsersPerDay(ctx *fiber.Ctx) error
}

// tutorialController serves the onboarding-completion records plus the
// signup chart behind the dashboard. The mobile app posts completions
// anonymously, so those routes stay open.
type tutorialController struct {
	service service.ITutorialService
	logger  logger.ILogger
}

func NewTutorialController(service service.ITutorialService, log logger.ILogger) ITutorialController {
	return &tutorialController{service: service, logger: log}
}

func (c *tutorialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api/tutorial-status")
	h.Get("", c.GetAll)
	h.Get("/user/:rut", c.ShowByRut)
	h.Get(":id", c.Show)
	h.Post("", c.Create)
	h.Put(":id", serverutils.JwtMiddleware, c.Update)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)

	r.Post("/api/tutorial-completado", c.Completed)
	r.Get("/api/usuarios-por-dia", c.UsersPerDay)
}

func (c *tutorialController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		c.logger.Error("TutorialController", "Failed to list tutorial statuses", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON([]*dto.TutorialStatusResponse{})
	}
	return ctx.JSON(res)
}

func (c *tutorialController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.Show(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Estado de tutorial no encontrado"})
	}
	return ctx.JSON(res)
}

func (c *tutorialController) ShowByRut(ctx *fiber.Ctx) error {
	rut := ctx.Params("rut")

	res, err := c.service.ShowByRut(ctx.Context(), rut)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Estado de tutorial no encontrado"})
	}
	return ctx.JSON(res)
}

func (c *tutorialController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTutorialStatusRequest
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

func (c *tutorialController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateTutorialStatusRequest
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
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Estado de tutorial no encontrado"})
	}
	return ctx.JSON(res)
}

func (c *tutorialController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	res, err := c.service.Delete(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Estado de tutorial no encontrado"})
	}
	return ctx.JSON(res)
}

func (c *tutorialController) Completed(ctx *fiber.Ctx) error {
	var req dto.TutorialCompletedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Completed(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *tutorialController) UsersPerDay(ctx *fiber.Ctx) error {
	days := ctx.QueryInt("days", 0)
	from := ctx.Query("from")
	to := ctx.Query("to")

	res, err := c.service.UsersPerDay(ctx.Context(), days, from, to)
	if err != nil {
		c.logger.Error("TutorialController", "Failed to build signup chart", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusInternalServerError).JSON([]*dto.UsersPerDayItem{})
	}
	return ctx.JSON(res)
}
