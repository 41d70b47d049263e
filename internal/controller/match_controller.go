package controller

import (
	"bloom-be/internal/dto"
	"bloom-be/internal/pkg/serverutils"
	"bloom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router)
	GetBoard(ctx *fiber.Ctx) error
	Respond(ctx *fiber.Ctx) error
}

type matchController struct {
	service service.IMatchService
}

func NewMatchController(service service.IMatchService) IMatchController {
	return &matchController{service: service}
}

func (c *matchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/matches")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.GetBoard)
	h.Post("/:id/respond", c.Respond)
}

func (c *matchController) GetBoard(ctx *fiber.Ctx) error {
	res, err := c.service.GetBoard(ctx.Context(), currentUserId(ctx))
	if err != nil {
		if err.Error() == "profile not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Match board", res))
}

func (c *matchController) Respond(ctx *fiber.Ctx) error {
	matchId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid match ID"))
	}

	var req dto.RespondMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Respond(ctx.Context(), currentUserId(ctx), matchId, &req)
	if err != nil {
		switch err.Error() {
		case "match not found", "profile not found":
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case "match does not involve this profile":
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		case "match is already decided":
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Response recorded", res))
}
