package controller

import (
	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/pkg/serverutils"
	"ai-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudioController interface {
	RegisterRoutes(r fiber.Router)
	RunEdit(ctx *fiber.Ctx) error
	Results(ctx *fiber.Ctx) error
	SetActiveOutput(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

type studioController struct {
	batchService  service.IBatchService
	studioService service.IStudioService
}

func NewStudioController(batchService service.IBatchService, studioService service.IStudioService) IStudioController {
	return &studioController{
		batchService:  batchService,
		studioService: studioService,
	}
}

func (c *studioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/studio/v1")
	h.Post("edit", c.RunEdit)
	h.Get("results", c.Results)
	h.Put("results/:id/active-output", c.SetActiveOutput)
	h.Post("analyze", c.Analyze)
	h.Post("generate", c.Generate)
}

func (c *studioController) RunEdit(ctx *fiber.Ctx) error {
	var req dto.BatchEditRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.batchService.Run(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run batch edit", res))
}

func (c *studioController) Results(ctx *fiber.Ctx) error {
	res := c.batchService.Results()
	return ctx.JSON(serverutils.SuccessResponse("Success show batch results", res))
}

func (c *studioController) SetActiveOutput(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	var req dto.SetActiveOutputRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.batchService.SetActiveOutput(id, req.Index); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success set active output", nil))
}

func (c *studioController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.studioService.Analyze(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze item", res))
}

func (c *studioController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.studioService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate images", res))
}
