package implementation

import (
	"context"
	"errors"

	"bloom-be/internal/entity"
	"bloom-be/internal/mapper"
	"bloom-be/internal/model"
	"bloom-be/internal/repository/contract"
	"bloom-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnswerMapper
}

func NewAnswerRepository(db *gorm.DB) contract.AnswerRepository {
	return &AnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnswerMapper(),
	}
}

func (r *AnswerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert targets the (user_id, question_key) composite key. Re-saving the
// same question updates the existing row in place: last write wins.
func (r *AnswerRepositoryImpl) Upsert(ctx context.Context, answer *entity.Answer) error {
	modelAnswer := r.mapper.ToModel(answer)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "question_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"value", "saved_at", "updated_at",
		}),
	}).Create(modelAnswer).Error
	if err != nil {
		return err
	}
	*answer = *r.mapper.ToEntity(modelAnswer)
	return nil
}

func (r *AnswerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Answer, error) {
	var modelAnswer model.Answer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelAnswer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelAnswer), nil
}

func (r *AnswerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error) {
	var modelAnswers []*model.Answer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelAnswers).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAnswers), nil
}

func (r *AnswerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Answer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AnswerRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Answer, error) {
	return r.FindAll(ctx, specification.OwnedBy{UserID: userId})
}

func (r *AnswerRepositoryImpl) FindByUserAndKey(ctx context.Context, userId uuid.UUID, questionKey string) (*entity.Answer, error) {
	return r.FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.Filter("question_key", questionKey),
	)
}

func (r *AnswerRepositoryImpl) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	return r.Count(ctx, specification.OwnedBy{UserID: userId})
}
