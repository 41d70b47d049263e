package service

import (
	"context"
	"errors"
	"time"

	"bloom-be/internal/dto"
	"bloom-be/internal/entity"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository/unitofwork"
	"bloom-be/pkg/events"
	pktNats "bloom-be/pkg/nats"
	"bloom-be/pkg/questionnaire"

	"github.com/google/uuid"
)

// Submit rejections. These are business outcomes, not failures: callers
// translate them into a {success: false} result instead of a 5xx.
var (
	ErrProfileAlreadySubmitted = errors.New("profile already submitted")
	ErrProfileAlreadyApproved  = errors.New("profile already approved")
	ErrProfileNeedsPhoto       = errors.New("profile needs at least one photo")
)

type IProfileService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)

	// Submit moves an incomplete or rejected profile into the review queue.
	Submit(ctx context.Context, userId uuid.UUID) error

	// RecomputeCompletion refreshes the derived completion figures from the
	// current answer set and photo count. Runs on the background worker.
	RecomputeCompletion(ctx context.Context, userId uuid.UUID) error
}

type profileService struct {
	uowFactory      unitofwork.RepositoryFactory
	questionService IQuestionService
	eventPublisher  *pktNats.Publisher
	log             logger.ILogger
}

func NewProfileService(
	uowFactory unitofwork.RepositoryFactory,
	questionService IQuestionService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		uowFactory:      uowFactory,
		questionService: questionService,
		eventPublisher:  eventPublisher,
		log:             log,
	}
}

func photoToResponse(p *entity.ProfilePhoto) dto.PhotoResponse {
	return dto.PhotoResponse{
		Id:         p.Id,
		URL:        p.URL,
		IsPrimary:  p.IsPrimary,
		OrderIndex: p.OrderIndex,
		CreatedAt:  p.CreatedAt,
	}
}

func profileToResponse(p *entity.Profile, photos []*entity.ProfilePhoto) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		Id:                   p.Id,
		UserId:               p.UserId,
		DisplayName:          p.DisplayName,
		Birthdate:            p.Birthdate,
		City:                 p.City,
		Status:               string(p.Status),
		CompletionPercentage: p.CompletionPercentage,
		PhotoCount:           p.PhotoCount,
		SubmittedAt:          p.SubmittedAt,
		ReviewedAt:           p.ReviewedAt,
		CreatedAt:            p.CreatedAt,
		Photos:               make([]dto.PhotoResponse, len(photos)),
	}
	if p.ReviewNotes != nil {
		resp.ReviewNotes = *p.ReviewNotes
	}
	for i, photo := range photos {
		resp.Photos[i] = photoToResponse(photo)
	}
	return resp
}

func (s *profileService) findProfile(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.Profile, error) {
	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}
	return profile, nil
}

func (s *profileService) Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := s.findProfile(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	photos, err := uow.PhotoRepository().FindByProfile(ctx, profile.Id)
	if err != nil {
		return nil, err
	}

	resp := profileToResponse(profile, photos)
	return &resp, nil
}

func (s *profileService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := s.findProfile(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	profile.DisplayName = req.DisplayName
	profile.UpdatedAt = time.Now()

	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	photos, err := uow.PhotoRepository().FindByProfile(ctx, profile.Id)
	if err != nil {
		return nil, err
	}

	resp := profileToResponse(profile, photos)
	return &resp, nil
}

func (s *profileService) Submit(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := s.findProfile(ctx, uow, userId)
	if err != nil {
		return err
	}

	if profile.Status == entity.ProfileStatusPendingApproval {
		return ErrProfileAlreadySubmitted
	}
	if profile.Status == entity.ProfileStatusApproved {
		return ErrProfileAlreadyApproved
	}
	if profile.PhotoCount < 1 {
		return ErrProfileNeedsPhoto
	}

	now := time.Now()
	profile.Status = entity.ProfileStatusPendingApproval
	profile.SubmittedAt = &now
	profile.UpdatedAt = now

	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return err
	}

	if err := s.eventPublisher.Publish(ctx, events.NewProfileSubmitted(profile.Id, userId)); err != nil {
		s.log.Warn("ProfileService", "Failed to publish PROFILE_SUBMITTED", map[string]interface{}{
			"profile_id": profile.Id.String(),
			"error":      err.Error(),
		})
	}

	s.log.Info("ProfileService", "Profile submitted for review", map[string]interface{}{"profile_id": profile.Id.String()})
	return nil
}

func (s *profileService) RecomputeCompletion(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := s.findProfile(ctx, uow, userId)
	if err != nil {
		return err
	}

	catalog, err := s.questionService.CoreCatalog(ctx)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		return nil
	}

	answers, err := uow.AnswerRepository().FindByUser(ctx, userId)
	if err != nil {
		return err
	}

	byKey := make(map[string]*entity.Answer, len(answers))
	for _, a := range answers {
		byKey[a.QuestionKey] = a
	}

	answered := 0
	for _, q := range catalog {
		if a, ok := byKey[q.ID]; ok && !a.Value.IsZero() {
			answered++
			// Mirror the birthdate answer onto the profile for age display.
			if q.InputType == questionnaire.InputDate && a.Value.Kind == questionnaire.KindDate {
				date := a.Value.Date
				profile.Birthdate = &date
			}
		}
	}

	photoCount, err := uow.PhotoRepository().CountByProfile(ctx, profile.Id)
	if err != nil {
		return err
	}

	profile.CompletionPercentage = completionPercent(answered, len(catalog), int(photoCount))
	profile.PhotoCount = int(photoCount)
	profile.UpdatedAt = time.Now()

	return uow.ProfileRepository().Update(ctx, profile)
}

// completionPercent derives the profile completion figure from answered
// questions plus the photo step, which counts as one more item. Review
// requires at least one photo, so an all-answers, no-photo profile must
// not read 100%.
func completionPercent(answered, catalogSize, photoCount int) int {
	total := catalogSize + 1
	done := answered
	if photoCount > 0 {
		done++
	}
	return done * 100 / total
}
