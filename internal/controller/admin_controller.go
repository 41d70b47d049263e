package controller

import (
	"bloom-be/internal/dto"
	"bloom-be/internal/pkg/serverutils"
	"bloom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListPending(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	SaveNotes(ctx *fiber.Ctx) error
	UpsertQuestion(ctx *fiber.Ctx) error
	DeleteQuestion(ctx *fiber.Ctx) error
	CreateMatch(ctx *fiber.Ctx) error
	BlockUser(ctx *fiber.Ctx) error
	UnblockUser(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService    service.IAdminService
	questionService service.IQuestionService
	matchService    service.IMatchService
}

func NewAdminController(adminService service.IAdminService, questionService service.IQuestionService, matchService service.IMatchService) IAdminController {
	return &adminController{
		adminService:    adminService,
		questionService: questionService,
		matchService:    matchService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)

	h.Get("/profiles/pending", c.ListPending)
	h.Get("/profiles/:id", c.GetProfile)
	h.Post("/profiles/:id/approve", c.Approve)
	h.Post("/profiles/:id/reject", c.Reject)
	h.Put("/profiles/:id/notes", c.SaveNotes)

	h.Put("/questions", c.UpsertQuestion)
	h.Delete("/questions/:key", c.DeleteQuestion)

	h.Post("/matches", c.CreateMatch)

	h.Post("/users/:id/block", c.BlockUser)
	h.Post("/users/:id/unblock", c.UnblockUser)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params("id"))
}

func (c *adminController) ListPending(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.adminService.ListPendingProfiles(ctx.Context(), page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending profiles", res))
}

func (c *adminController) GetProfile(ctx *fiber.Ctx) error {
	profileId, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid profile ID"))
	}

	res, err := c.adminService.GetProfileDetail(ctx.Context(), profileId)
	if err != nil {
		if err.Error() == "profile not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile detail", res))
}

func (c *adminController) reviewRequest(ctx *fiber.Ctx, approve bool) error {
	profileId, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid profile ID"))
	}

	var req dto.ReviewProfileRequest
	if err := ctx.BodyParser(&req); err != nil && len(ctx.Body()) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	reviewerId := currentUserId(ctx)

	var res *dto.ReviewProfileResponse
	if approve {
		res, err = c.adminService.ApproveProfile(ctx.Context(), profileId, reviewerId, &req)
	} else {
		res, err = c.adminService.RejectProfile(ctx.Context(), profileId, reviewerId, &req)
	}
	if err != nil {
		switch err.Error() {
		case "profile not found":
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case "profile is not awaiting review":
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Review recorded", res))
}

func (c *adminController) Approve(ctx *fiber.Ctx) error {
	return c.reviewRequest(ctx, true)
}

func (c *adminController) Reject(ctx *fiber.Ctx) error {
	return c.reviewRequest(ctx, false)
}

func (c *adminController) SaveNotes(ctx *fiber.Ctx) error {
	profileId, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid profile ID"))
	}

	var req dto.SaveReviewNotesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.adminService.SaveReviewNotes(ctx.Context(), profileId, &req); err != nil {
		if err.Error() == "profile not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Notes saved", nil))
}

func (c *adminController) UpsertQuestion(ctx *fiber.Ctx) error {
	var req dto.UpsertQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.questionService.UpsertQuestion(ctx.Context(), &req)
	if err != nil {
		if err.Error() == "catalog already has a transition boundary" {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Question saved", res))
}

func (c *adminController) DeleteQuestion(ctx *fiber.Ctx) error {
	key := ctx.Params("key")
	if key == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Question key is required"))
	}

	if err := c.questionService.DeleteQuestion(ctx.Context(), key); err != nil {
		if err.Error() == "question not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Question deleted", nil))
}

func (c *adminController) CreateMatch(ctx *fiber.Ctx) error {
	var req dto.CreateMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.matchService.CreateMatch(ctx.Context(), &req)
	if err != nil {
		switch err.Error() {
		case "profile not found":
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case "match already exists for this pair":
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		case "profile is not approved", "cannot match a profile with itself":
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Match created", res))
}

func (c *adminController) BlockUser(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	var req dto.BlockUserRequest
	if err := ctx.BodyParser(&req); err != nil && len(ctx.Body()) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := c.adminService.BlockUser(ctx.Context(), userId, &req); err != nil {
		switch err.Error() {
		case "user not found":
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case "cannot block an admin":
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("User blocked", nil))
}

func (c *adminController) UnblockUser(ctx *fiber.Ctx) error {
	userId, err := parseIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid user ID"))
	}

	if err := c.adminService.UnblockUser(ctx.Context(), userId); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("User unblocked", nil))
}
