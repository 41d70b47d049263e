package controller

import (
	"bloom-be/internal/dto"
	"bloom-be/internal/pkg/serverutils"
	"bloom-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	GetAnswers(ctx *fiber.Ctx) error
	SaveAnswer(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
	answerService  service.IAnswerService
}

func NewProfileController(profileService service.IProfileService, answerService service.IAnswerService) IProfileController {
	return &profileController{
		profileService: profileService,
		answerService:  answerService,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/", c.Get)
	h.Put("/", c.Update)
	h.Get("/answers", c.GetAnswers)
	h.Put("/answers", c.SaveAnswer)
}

func (c *profileController) Get(ctx *fiber.Ctx) error {
	res, err := c.profileService.Get(ctx.Context(), currentUserId(ctx))
	if err != nil {
		if err.Error() == "profile not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

func (c *profileController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.profileService.Update(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *profileController) GetAnswers(ctx *fiber.Ctx) error {
	res, err := c.answerService.GetAll(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Answers", res))
}

// SaveAnswer covers profile edits outside the onboarding flow: the client
// re-renders a single question and upserts directly.
func (c *profileController) SaveAnswer(ctx *fiber.Ctx) error {
	var req dto.SaveAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.answerService.Save(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		switch err.Error() {
		case "question not found":
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case "invalid answer":
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Answer saved", res))
}
