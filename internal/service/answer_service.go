package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bloom-be/internal/dto"
	"bloom-be/internal/entity"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository/unitofwork"
	"bloom-be/pkg/questionnaire"

	"github.com/google/uuid"
)

// RecomputeCompletionMessage is the payload published after each answer
// write so a background worker refreshes the profile completion figures.
type RecomputeCompletionMessage struct {
	UserId uuid.UUID `json:"user_id"`
}

type IAnswerService interface {
	// Save validates against the question definition and upserts. A repeat
	// save for the same question replaces the stored value in place.
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveAnswerRequest) (*dto.AnswerResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) (*dto.AnswerListResponse, error)
	Get(ctx context.Context, userId uuid.UUID, questionKey string) (*dto.AnswerResponse, error)
}

type answerService struct {
	uowFactory      unitofwork.RepositoryFactory
	questionService IQuestionService
	publisher       IPublisherService
	log             logger.ILogger
}

func NewAnswerService(
	uowFactory unitofwork.RepositoryFactory,
	questionService IQuestionService,
	publisher IPublisherService,
	log logger.ILogger,
) IAnswerService {
	return &answerService{
		uowFactory:      uowFactory,
		questionService: questionService,
		publisher:       publisher,
		log:             log,
	}
}

func answerToResponse(a *entity.Answer) dto.AnswerResponse {
	return dto.AnswerResponse{
		QuestionKey: a.QuestionKey,
		Value:       a.Value,
		SavedAt:     a.SavedAt,
	}
}

func (s *answerService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveAnswerRequest) (*dto.AnswerResponse, error) {
	catalog, err := s.questionService.CoreCatalog(ctx)
	if err != nil {
		return nil, err
	}

	question := catalog.ByID(req.QuestionKey)
	if question == nil {
		return nil, errors.New("question not found")
	}

	if !questionnaire.Validate(*question, req.Value) {
		return nil, errors.New("invalid answer")
	}

	answer := &entity.Answer{
		Id:          uuid.New(),
		UserId:      userId,
		QuestionKey: req.QuestionKey,
		Value:       req.Value,
		SavedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AnswerRepository().Upsert(ctx, answer); err != nil {
		return nil, err
	}

	// Completion recompute is asynchronous; a publish failure is logged and
	// the save still counts.
	payload, err := json.Marshal(RecomputeCompletionMessage{UserId: userId})
	if err == nil {
		err = s.publisher.Publish(ctx, payload)
	}
	if err != nil {
		s.log.Warn("AnswerService", "Failed to queue completion recompute", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}

	resp := answerToResponse(answer)
	return &resp, nil
}

func (s *answerService) GetAll(ctx context.Context, userId uuid.UUID) (*dto.AnswerListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answers, err := uow.AnswerRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	resp := &dto.AnswerListResponse{
		Answers: make([]dto.AnswerResponse, len(answers)),
		Total:   len(answers),
	}
	for i, a := range answers {
		resp.Answers[i] = answerToResponse(a)
	}
	return resp, nil
}

func (s *answerService) Get(ctx context.Context, userId uuid.UUID, questionKey string) (*dto.AnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	answer, err := uow.AnswerRepository().FindByUserAndKey(ctx, userId, questionKey)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, errors.New("answer not found")
	}

	resp := answerToResponse(answer)
	return &resp, nil
}
