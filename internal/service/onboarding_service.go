package service

import (
	"context"
	"errors"
	"time"

	"bloom-be/internal/dto"
	"bloom-be/internal/pkg/i18n"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository/unitofwork"
	"bloom-be/pkg/flow"
	"bloom-be/pkg/questionnaire"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type IOnboardingService interface {
	// GetState returns the current flow position, creating a machine for
	// the session if none exists yet.
	GetState(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error)

	// Advance validates the answer, saves it optimistically, and moves
	// forward. A failed save is reported but never blocks navigation.
	Advance(ctx context.Context, userId uuid.UUID, req *dto.AdvanceRequest) (*dto.AdvanceResponse, error)

	Back(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error)
	ContinueFromPhotos(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error)
	ContinueFromTransition(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error)
	BackFromTransition(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error)

	// Submit finalizes a completed flow: the profile enters the review
	// queue and the session machine is dropped.
	Submit(ctx context.Context, userId uuid.UUID, locale string) (*dto.SubmitProfileResponse, error)
}

// answerSink adapts the answer service to the flow machine's persistence
// port for one user.
type answerSink struct {
	userId  uuid.UUID
	answers IAnswerService
}

func (s *answerSink) SaveAnswer(ctx context.Context, questionID string, value questionnaire.AnswerValue) error {
	_, err := s.answers.Save(ctx, s.userId, &dto.SaveAnswerRequest{
		QuestionKey: questionID,
		Value:       value,
	})
	return err
}

type onboardingService struct {
	uowFactory      unitofwork.RepositoryFactory
	questionService IQuestionService
	answerService   IAnswerService
	profileService  IProfileService
	translator      *i18n.Translator
	sessions        *cache.Cache
	log             logger.ILogger
}

func NewOnboardingService(
	uowFactory unitofwork.RepositoryFactory,
	questionService IQuestionService,
	answerService IAnswerService,
	profileService IProfileService,
	translator *i18n.Translator,
	log logger.ILogger,
) IOnboardingService {
	// Sessions idle out after an hour; a fresh machine is built on the next
	// request. Answer rows survive, flow position does not.
	sessions := cache.New(1*time.Hour, 10*time.Minute)
	return &onboardingService{
		uowFactory:      uowFactory,
		questionService: questionService,
		answerService:   answerService,
		profileService:  profileService,
		translator:      translator,
		sessions:        sessions,
		log:             log,
	}
}

func (s *onboardingService) machine(ctx context.Context, userId uuid.UUID) (*flow.Machine, error) {
	if x, found := s.sessions.Get(userId.String()); found {
		return x.(*flow.Machine), nil
	}

	catalog, err := s.questionService.CoreCatalog(ctx)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	m, err := flow.New(catalog, profile.PhotoCount, &answerSink{userId: userId, answers: s.answerService})
	if err != nil {
		return nil, err
	}

	s.sessions.Set(userId.String(), m, cache.DefaultExpiration)
	return m, nil
}

func (s *onboardingService) stateResponse(ctx context.Context, userId uuid.UUID, m *flow.Machine) *dto.OnboardingStateResponse {
	snap := m.Snapshot()
	current, total, percent := snap.Progress()

	resp := &dto.OnboardingStateResponse{
		Step:            string(snap.Step),
		ProgressCurrent: current,
		ProgressTotal:   total,
		ProgressPercent: float64(percent),
	}

	if q := m.Current(); q != nil {
		qr := dto.QuestionToResponse(*q)
		resp.Question = &qr
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if profile, err := uow.ProfileRepository().FindByUserID(ctx, userId); err == nil && profile != nil {
		resp.PhotoCount = profile.PhotoCount
	}

	return resp
}

func (s *onboardingService) GetState(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error) {
	m, err := s.machine(ctx, userId)
	if err != nil {
		return nil, err
	}
	return s.stateResponse(ctx, userId, m), nil
}

func (s *onboardingService) Advance(ctx context.Context, userId uuid.UUID, req *dto.AdvanceRequest) (*dto.AdvanceResponse, error) {
	m, err := s.machine(ctx, userId)
	if err != nil {
		return nil, err
	}

	current := m.Current()
	if current == nil {
		return nil, flow.ErrWrongStep
	}
	if current.ID != req.QuestionKey {
		return nil, errors.New("question key does not match the current position")
	}

	resp := &dto.AdvanceResponse{Saved: true}

	err = m.Next(ctx, req.Value)
	var saveErr *flow.SaveError
	switch {
	case err == nil:
	case errors.As(err, &saveErr):
		// The machine advanced anyway. Tell the client so it can surface a
		// dismissible warning.
		resp.Saved = false
		resp.SaveError = saveErr.Error()
		s.log.Warn("OnboardingService", "Answer save failed during advance", map[string]interface{}{
			"user_id":  userId.String(),
			"question": saveErr.QuestionID,
			"error":    saveErr.Err.Error(),
		})
	default:
		return nil, err
	}

	resp.State = *s.stateResponse(ctx, userId, m)
	return resp, nil
}

func (s *onboardingService) Back(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error) {
	m, err := s.machine(ctx, userId)
	if err != nil {
		return nil, err
	}
	if err := m.Back(); err != nil {
		return nil, err
	}
	return s.stateResponse(ctx, userId, m), nil
}

func (s *onboardingService) ContinueFromPhotos(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error) {
	m, err := s.machine(ctx, userId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindByUserID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	if err := m.ContinueFromPhotos(profile.PhotoCount); err != nil {
		return nil, err
	}
	return s.stateResponse(ctx, userId, m), nil
}

func (s *onboardingService) ContinueFromTransition(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error) {
	m, err := s.machine(ctx, userId)
	if err != nil {
		return nil, err
	}
	if err := m.ContinueFromTransition(); err != nil {
		return nil, err
	}
	return s.stateResponse(ctx, userId, m), nil
}

func (s *onboardingService) BackFromTransition(ctx context.Context, userId uuid.UUID) (*dto.OnboardingStateResponse, error) {
	m, err := s.machine(ctx, userId)
	if err != nil {
		return nil, err
	}
	if err := m.BackFromTransition(); err != nil {
		return nil, err
	}
	return s.stateResponse(ctx, userId, m), nil
}

func (s *onboardingService) Submit(ctx context.Context, userId uuid.UUID, locale string) (*dto.SubmitProfileResponse, error) {
	m, err := s.machine(ctx, userId)
	if err != nil {
		return nil, err
	}
	if !m.Complete() {
		return &dto.SubmitProfileResponse{
			Success: false,
			Message: s.translator.T(locale, "onboarding.incomplete"),
		}, nil
	}

	// Completion figures must be current before review, so recompute
	// synchronously here rather than waiting on the worker.
	if err := s.profileService.RecomputeCompletion(ctx, userId); err != nil {
		return nil, err
	}

	if err := s.profileService.Submit(ctx, userId); err != nil {
		if key, ok := submitRejectionKey(err); ok {
			return &dto.SubmitProfileResponse{
				Success: false,
				Message: s.translator.T(locale, key),
			}, nil
		}
		return nil, err
	}

	s.sessions.Delete(userId.String())

	return &dto.SubmitProfileResponse{
		Success: true,
		Message: s.translator.T(locale, "onboarding.completed"),
	}, nil
}

// submitRejectionKey maps a submit business rejection to its message key.
// Anything else is a real failure and propagates to the error handler.
func submitRejectionKey(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrProfileAlreadySubmitted):
		return "submit.already_submitted", true
	case errors.Is(err, ErrProfileAlreadyApproved):
		return "submit.already_approved", true
	case errors.Is(err, ErrProfileNeedsPhoto):
		return "onboarding.need_photo", true
	}
	return "", false
}
