package controller

import (
	"ai-studio-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

type IMediaController interface {
	RegisterRoutes(r fiber.Router)
	Serve(ctx *fiber.Ctx) error
}

type mediaController struct {
	handleRepo contract.IHandleRepository
}

func NewMediaController(handleRepo contract.IHandleRepository) IMediaController {
	return &mediaController{
		handleRepo: handleRepo,
	}
}

func (c *mediaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/media/v1")
	h.Get(":handle", c.Serve)
}

// Serve renders the payload behind a display handle. A released handle is
// a plain 404; in-flight results may still point at one after its item was
// removed, and the client treats that as an unloadable image.
func (c *mediaController) Serve(ctx *fiber.Ctx) error {
	handle := ctx.Params("handle")

	payload, mimeType, found := c.handleRepo.Resolve(handle)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "unknown or released handle")
	}

	if mimeType != "" {
		ctx.Set(fiber.HeaderContentType, mimeType)
	}
	return ctx.Send(payload)
}
