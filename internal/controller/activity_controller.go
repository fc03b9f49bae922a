package controller

import (
	"ai-studio-be/internal/pkg/serverutils"
	"ai-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type activityController struct {
	activityService service.IActivityService
}

func NewActivityController(activityService service.IActivityService) IActivityController {
	return &activityController{
		activityService: activityService,
	}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity/v1")
	h.Get("", c.Show)
	h.Delete("", c.Clear)
}

func (c *activityController) Show(ctx *fiber.Ctx) error {
	res := c.activityService.Snapshot()
	return ctx.JSON(serverutils.SuccessResponse("Success show activity log", res))
}

// Clear is unconditional here; the confirmation dialog lives in the client.
func (c *activityController) Clear(ctx *fiber.Ctx) error {
	c.activityService.Clear(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear activity log", nil))
}
