package controller

import (
	"bloom-be/internal/dto"
	"bloom-be/internal/pkg/serverutils"
	"bloom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPhotoController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	SetPrimary(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
}

type photoController struct {
	service service.IPhotoService
}

func NewPhotoController(service service.IPhotoService) IPhotoController {
	return &photoController{service: service}
}

func (c *photoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/photos")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.List)
	h.Post("/", c.Upload)
	h.Delete("/:id", c.Delete)
	h.Put("/:id/primary", c.SetPrimary)
	h.Put("/reorder", c.Reorder)
}

func (c *photoController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Photo file is required"))
	}

	res, err := c.service.Upload(ctx.Context(), currentUserId(ctx), file)
	if err != nil {
		switch err.Error() {
		case "photo too large", "unsupported photo format":
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Photo uploaded", res))
}

func (c *photoController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Photos", res))
}

func (c *photoController) Delete(ctx *fiber.Ctx) error {
	photoId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid photo ID"))
	}

	if err := c.service.Delete(ctx.Context(), currentUserId(ctx), photoId); err != nil {
		if err.Error() == "photo not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Photo deleted", nil))
}

func (c *photoController) SetPrimary(ctx *fiber.Ctx) error {
	photoId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid photo ID"))
	}

	if err := c.service.SetPrimary(ctx.Context(), currentUserId(ctx), photoId); err != nil {
		if err.Error() == "photo not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Primary photo updated", nil))
}

func (c *photoController) Reorder(ctx *fiber.Ctx) error {
	var req dto.ReorderPhotosRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Reorder(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Photos reordered", res))
}
