package service

import (
	"context"
	"errors"
	"time"

	"bloom-be/internal/dto"
	"bloom-be/internal/entity"
	"bloom-be/internal/pkg/logger"
	"bloom-be/internal/repository/specification"
	"bloom-be/internal/repository/unitofwork"
	"bloom-be/pkg/questionnaire"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const catalogCacheKey = "question_catalog"

type IQuestionService interface {
	GetCatalog(ctx context.Context) (*dto.CatalogResponse, error)
	// CoreCatalog returns the engine-facing catalog used by the flow machine.
	CoreCatalog(ctx context.Context) (questionnaire.Catalog, error)
	UpsertQuestion(ctx context.Context, req *dto.UpsertQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, key string) error
	InvalidateCache()
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
	log        logger.ILogger
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IQuestionService {
	// Catalog rows change only on admin edits, so a long TTL is fine.
	c := cache.New(10*time.Minute, 30*time.Minute)
	return &questionService{
		uowFactory: uowFactory,
		cache:      c,
		log:        log,
	}
}

func (s *questionService) loadCatalog(ctx context.Context) (questionnaire.Catalog, error) {
	if x, found := s.cache.Get(catalogCacheKey); found {
		return x.(questionnaire.Catalog), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.QuestionRepository().FindCatalog(ctx)
	if err != nil {
		return nil, err
	}

	catalog := entity.CatalogToCore(rows)
	s.cache.Set(catalogCacheKey, catalog, cache.DefaultExpiration)
	return catalog, nil
}

func (s *questionService) GetCatalog(ctx context.Context) (*dto.CatalogResponse, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.CatalogResponse{
		Questions: make([]dto.QuestionResponse, len(catalog)),
		Total:     len(catalog),
	}
	for i, q := range catalog {
		resp.Questions[i] = dto.QuestionToResponse(q)
	}
	return resp, nil
}

func (s *questionService) CoreCatalog(ctx context.Context) (questionnaire.Catalog, error) {
	return s.loadCatalog(ctx)
}

func (s *questionService) UpsertQuestion(ctx context.Context, req *dto.UpsertQuestionRequest) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	row := &entity.Question{
		Key:      req.Key,
		Order:    req.Order,
		Prompt:   req.Prompt,
		Subtitle: req.Subtitle,
		HelpText: req.HelpText,

		InputType: questionnaire.InputType(req.InputType),
		Options: questionnaire.Options{
			Choices:    req.Choices,
			Min:        req.Min,
			Max:        req.Max,
			Default:    req.Default,
			MinLabel:   req.MinLabel,
			MaxLabel:   req.MaxLabel,
			FieldCount: req.FieldCount,
		},
		Rules: questionnaire.Rules{
			MinSelections: req.MinSelections,
			MaxSelections: req.MaxSelections,
			MaxLength:     req.MaxLength,
		},

		IconName:               req.IconName,
		Section:                questionnaire.Section(req.Section),
		InsertsTransitionAfter: req.InsertsTransitionAfter,
		Active:                 req.Active,
		UpdatedAt:              time.Now(),
	}

	existing, err := uow.QuestionRepository().FindOne(ctx, specification.ByQuestionKey{Key: req.Key})
	if err != nil {
		return nil, err
	}

	// The transition boundary is unique across the catalog. Reject an edit
	// that would introduce a second one.
	if req.InsertsTransitionAfter {
		rows, err := uow.QuestionRepository().FindCatalog(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			if r.InsertsTransitionAfter && r.Key != req.Key {
				return nil, errors.New("catalog already has a transition boundary")
			}
		}
	}

	if existing != nil {
		row.Id = existing.Id
		row.CreatedAt = existing.CreatedAt
		if err := uow.QuestionRepository().Update(ctx, row); err != nil {
			return nil, err
		}
	} else {
		row.Id = uuid.New()
		row.CreatedAt = time.Now()
		if err := uow.QuestionRepository().Create(ctx, row); err != nil {
			return nil, err
		}
	}

	s.InvalidateCache()
	s.log.Info("QuestionService", "Catalog question upserted", map[string]interface{}{"key": req.Key})

	resp := dto.QuestionToResponse(row.ToCore())
	return &resp, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, key string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.QuestionRepository().FindOne(ctx, specification.ByQuestionKey{Key: key})
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("question not found")
	}

	if err := uow.QuestionRepository().Delete(ctx, existing.Id); err != nil {
		return err
	}

	s.InvalidateCache()
	return nil
}

func (s *questionService) InvalidateCache() {
	s.cache.Delete(catalogCacheKey)
}
