package controller

import (
	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/pkg/serverutils"
	"ai-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPresetController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type presetController struct {
	presetService service.IPresetService
}

func NewPresetController(presetService service.IPresetService) IPresetController {
	return &presetController{
		presetService: presetService,
	}
}

func (c *presetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preset/v1")
	h.Get("", c.Show)
	h.Post("", c.Add)
	h.Delete(":label", c.Remove)
}

func (c *presetController) Show(ctx *fiber.Ctx) error {
	res := c.presetService.Snapshot()
	return ctx.JSON(serverutils.SuccessResponse("Success show presets", res))
}

func (c *presetController) Add(ctx *fiber.Ctx) error {
	var req dto.AddPresetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.presetService.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add preset", res))
}

func (c *presetController) Remove(ctx *fiber.Ctx) error {
	label := ctx.Params("label")
	c.presetService.Remove(ctx.Context(), label)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove preset", nil))
}
