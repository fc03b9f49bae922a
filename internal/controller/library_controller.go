package controller

import (
	"io"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/pkg/serverutils"
	"ai-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILibraryController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	ToggleSelection(ctx *fiber.Ctx) error
	SelectAll(ctx *fiber.Ctx) error
	DeselectAll(ctx *fiber.Ctx) error
}

type libraryController struct {
	libraryService service.ILibraryService
}

func NewLibraryController(libraryService service.ILibraryService) ILibraryController {
	return &libraryController{
		libraryService: libraryService,
	}
}

func (c *libraryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/library/v1")
	h.Get("", c.Show)
	h.Post("items", c.Upload)
	h.Delete("items/:id", c.Remove)
	h.Delete("items", c.Clear)
	h.Post("selection/:id/toggle", c.ToggleSelection)
	h.Post("selection/all", c.SelectAll)
	h.Delete("selection", c.DeselectAll)
}

func (c *libraryController) Show(ctx *fiber.Ctx) error {
	res := c.libraryService.Snapshot()
	return ctx.JSON(serverutils.SuccessResponse("Success show library", res))
}

func (c *libraryController) Upload(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "expected multipart form upload")
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no files in upload")
	}

	files := make([]dto.UploadedFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unreadable file part: "+header.Filename)
		}
		payload, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unreadable file part: "+header.Filename)
		}

		files = append(files, dto.UploadedFile{
			Name:     header.Filename,
			Size:     header.Size,
			MimeType: header.Header.Get("Content-Type"),
			Payload:  payload,
		})
	}

	res := c.libraryService.AddItems(files)
	return ctx.JSON(serverutils.SuccessResponse("Success upload items", res))
}

func (c *libraryController) Remove(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	c.libraryService.RemoveItem(id)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove item", nil))
}

func (c *libraryController) Clear(ctx *fiber.Ctx) error {
	c.libraryService.ClearAll()
	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear library", nil))
}

func (c *libraryController) ToggleSelection(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item id")
	}

	c.libraryService.ToggleSelection(id)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success toggle selection", nil))
}

func (c *libraryController) SelectAll(ctx *fiber.Ctx) error {
	c.libraryService.SelectAll()
	return ctx.JSON(serverutils.SuccessResponse[any]("Success select all", nil))
}

func (c *libraryController) DeselectAll(ctx *fiber.Ctx) error {
	c.libraryService.DeselectAll()
	return ctx.JSON(serverutils.SuccessResponse[any]("Success deselect all", nil))
}
