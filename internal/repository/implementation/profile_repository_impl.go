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
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	modelProfile := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(modelProfile)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entity.Profile) error {
	modelProfile := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(modelProfile)
	return nil
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var modelProfile model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProfile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelProfile), nil
}

func (r *ProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	var modelProfiles []*model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelProfiles).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelProfiles), nil
}

func (r *ProfileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Profile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	return r.FindOne(ctx, specification.ByUserID{UserID: userId})
}

func (r *ProfileRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ProfileRepositoryImpl) UpdateCompletion(ctx context.Context, id uuid.UUID, percentage, photoCount int) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"completion_percentage": percentage,
			"photo_count":           photoCount,
		}).Error
}

func (r *ProfileRepositoryImpl) UpdateReviewNotes(ctx context.Context, id uuid.UUID, notes string) error {
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		Update("review_notes", notes).Error
}
