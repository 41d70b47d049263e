package service

import (
	"context"
	"errors"
	"time"

	"bloom-be/internal/dto"
	"bloom-be/internal/entity"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/pkg/mailer"
	"bloom-be/internal/repository/specification"
	"bloom-be/internal/repository/unitofwork"
	"bloom-be/pkg/events"
	pktNats "bloom-be/pkg/nats"

	"github.com/google/uuid"
)

type IAdminService interface {
	ListPendingProfiles(ctx context.Context, page, limit int) (*dto.PendingProfileListResponse, error)
	GetProfileDetail(ctx context.Context, profileId uuid.UUID) (*dto.PendingProfileResponse, error)

	ApproveProfile(ctx context.Context, profileId, reviewerId uuid.UUID, req *dto.ReviewProfileRequest) (*dto.ReviewProfileResponse, error)
	RejectProfile(ctx context.Context, profileId, reviewerId uuid.UUID, req *dto.ReviewProfileRequest) (*dto.ReviewProfileResponse, error)

	// SaveReviewNotes autosaves the reviewer's notes without deciding.
	SaveReviewNotes(ctx context.Context, profileId uuid.UUID, req *dto.SaveReviewNotesRequest) error

	BlockUser(ctx context.Context, userId uuid.UUID, req *dto.BlockUserRequest) error
	UnblockUser(ctx context.Context, userId uuid.UUID) error
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *adminService) pendingDetail(ctx context.Context, uow unitofwork.UnitOfWork, profile *entity.Profile) (*dto.PendingProfileResponse, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: profile.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("profile owner not found")
	}

	photos, err := uow.PhotoRepository().FindByProfile(ctx, profile.Id)
	if err != nil {
		return nil, err
	}

	answers, err := uow.AnswerRepository().FindByUser(ctx, profile.UserId)
	if err != nil {
		return nil, err
	}

	detail := &dto.PendingProfileResponse{
		Profile:     profileToResponse(profile, photos),
		Email:       user.Email,
		SubmittedAt: profile.SubmittedAt,
		Answers:     make([]dto.AnswerResponse, len(answers)),
	}
	for i, a := range answers {
		detail.Answers[i] = answerToResponse(a)
	}
	return detail, nil
}

func (s *adminService) ListPendingProfiles(ctx context.Context, page, limit int) (*dto.PendingProfileListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	statusSpec := specification.ByProfileStatus{Status: string(entity.ProfileStatusPendingApproval)}

	total, err := uow.ProfileRepository().Count(ctx, statusSpec)
	if err != nil {
		return nil, err
	}

	profiles, err := uow.ProfileRepository().FindAll(ctx,
		statusSpec,
		specification.OrderBy{Field: "submitted_at"},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.PendingProfileListResponse{
		Profiles: make([]dto.PendingProfileResponse, 0, len(profiles)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
	for _, p := range profiles {
		detail, err := s.pendingDetail(ctx, uow, p)
		if err != nil {
			return nil, err
		}
		resp.Profiles = append(resp.Profiles, *detail)
	}
	return resp, nil
}

func (s *adminService) GetProfileDetail(ctx context.Context, profileId uuid.UUID) (*dto.PendingProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: profileId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	return s.pendingDetail(ctx, uow, profile)
}

func (s *adminService) review(ctx context.Context, profileId, reviewerId uuid.UUID, notes string, approve bool) (*dto.ReviewProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: profileId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}
	if profile.Status != entity.ProfileStatusPendingApproval {
		return nil, errors.New("profile is not awaiting review")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: profile.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("profile owner not found")
	}

	now := time.Now()
	if approve {
		profile.Status = entity.ProfileStatusApproved
	} else {
		profile.Status = entity.ProfileStatusRejected
	}
	if notes != "" {
		profile.ReviewNotes = &notes
	}
	profile.ReviewedBy = &reviewerId
	profile.ReviewedAt = &now
	profile.UpdatedAt = now

	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	var event events.Event
	if approve {
		event = events.NewProfileApproved(profile.Id, profile.UserId, reviewerId)
	} else {
		event = events.NewProfileRejected(profile.Id, profile.UserId, reviewerId, notes)
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("AdminService", "Failed to publish review event", map[string]interface{}{
			"profile_id": profile.Id.String(),
			"error":      err.Error(),
		})
	}

	// Email delivery is best-effort; the review decision already stands.
	go func() {
		var mailErr error
		if approve {
			mailErr = s.emailService.SendProfileApproved(user.Email, profile.DisplayName)
		} else {
			mailErr = s.emailService.SendProfileRejected(user.Email, profile.DisplayName, notes)
		}
		if mailErr != nil {
			s.log.Warn("AdminService", "Review email failed", map[string]interface{}{
				"profile_id": profile.Id.String(),
				"error":      mailErr.Error(),
			})
		}
	}()

	s.log.Info("AdminService", "Profile reviewed", map[string]interface{}{
		"profile_id": profile.Id.String(),
		"approved":   approve,
	})

	return &dto.ReviewProfileResponse{
		ProfileId:  profile.Id,
		Status:     string(profile.Status),
		ReviewedAt: now,
	}, nil
}

func (s *adminService) ApproveProfile(ctx context.Context, profileId, reviewerId uuid.UUID, req *dto.ReviewProfileRequest) (*dto.ReviewProfileResponse, error) {
	return s.review(ctx, profileId, reviewerId, req.Notes, true)
}

func (s *adminService) RejectProfile(ctx context.Context, profileId, reviewerId uuid.UUID, req *dto.ReviewProfileRequest) (*dto.ReviewProfileResponse, error) {
	return s.review(ctx, profileId, reviewerId, req.Notes, false)
}

func (s *adminService) SaveReviewNotes(ctx context.Context, profileId uuid.UUID, req *dto.SaveReviewNotesRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: profileId})
	if err != nil {
		return err
	}
	if profile == nil {
		return errors.New("profile not found")
	}

	return uow.ProfileRepository().UpdateReviewNotes(ctx, profileId, req.Notes)
}

func (s *adminService) BlockUser(ctx context.Context, userId uuid.UUID, req *dto.BlockUserRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if user.Role == entity.UserRoleAdmin {
		return errors.New("cannot block an admin")
	}

	if err := uow.UserRepository().UpdateStatus(ctx, userId, string(entity.UserStatusBlocked)); err != nil {
		return err
	}

	s.log.Info("AdminService", "User blocked", map[string]interface{}{
		"user_id": userId.String(),
		"reason":  req.Reason,
	})
	return nil
}

func (s *adminService) UnblockUser(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().UpdateStatus(ctx, userId, string(entity.UserStatusActive))
}
