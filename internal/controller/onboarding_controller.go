package controller

import (
	"errors"

	"bloom-be/internal/dto"
	"bloom-be/internal/pkg/serverutils"
	"bloom-be/internal/service"
	"bloom-be/pkg/flow"

	"github.com/gofiber/fiber/v2"
)

type IOnboardingController interface {
	RegisterRoutes(r fiber.Router)
	GetState(ctx *fiber.Ctx) error
	GetQuestions(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
	Back(ctx *fiber.Ctx) error
	ContinueFromPhotos(ctx *fiber.Ctx) error
	ContinueFromTransition(ctx *fiber.Ctx) error
	BackFromTransition(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type onboardingController struct {
	service         service.IOnboardingService
	questionService service.IQuestionService
}

func NewOnboardingController(svc service.IOnboardingService, questionService service.IQuestionService) IOnboardingController {
	return &onboardingController{service: svc, questionService: questionService}
}

func (c *onboardingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/onboarding")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/state", c.GetState)
	h.Get("/questions", c.GetQuestions)
	h.Post("/advance", c.Advance)
	h.Post("/back", c.Back)
	h.Post("/photos/continue", c.ContinueFromPhotos)
	h.Post("/transition/continue", c.ContinueFromTransition)
	h.Post("/transition/back", c.BackFromTransition)
	h.Post("/submit", c.Submit)
}

// flowError maps machine errors onto HTTP statuses. Invalid answers and
// wrong-step calls are client errors; everything else is a 500.
func flowError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, flow.ErrInvalidAnswer):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
	case errors.Is(err, flow.ErrWrongStep), errors.Is(err, flow.ErrNeedPhoto):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}

func (c *onboardingController) GetState(ctx *fiber.Ctx) error {
	res, err := c.service.GetState(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return flowError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Onboarding state", res))
}

func (c *onboardingController) GetQuestions(ctx *fiber.Ctx) error {
	res, err := c.questionService.GetCatalog(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Question catalog", res))
}

func (c *onboardingController) Advance(ctx *fiber.Ctx) error {
	var req dto.AdvanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Advance(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return flowError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Advanced", res))
}

func (c *onboardingController) Back(ctx *fiber.Ctx) error {
	res, err := c.service.Back(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return flowError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Moved back", res))
}

func (c *onboardingController) ContinueFromPhotos(ctx *fiber.Ctx) error {
	res, err := c.service.ContinueFromPhotos(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return flowError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Continued", res))
}

func (c *onboardingController) ContinueFromTransition(ctx *fiber.Ctx) error {
	res, err := c.service.ContinueFromTransition(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return flowError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Continued", res))
}

func (c *onboardingController) BackFromTransition(ctx *fiber.Ctx) error {
	res, err := c.service.BackFromTransition(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return flowError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Moved back", res))
}

func (c *onboardingController) Submit(ctx *fiber.Ctx) error {
	locale := ctx.Get("Accept-Language")
	if len(locale) > 2 {
		locale = locale[:2]
	}
	res, err := c.service.Submit(ctx.Context(), currentUserId(ctx), locale)
	if err != nil {
		return flowError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Submitted", res))
}
