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

type PhotoRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewPhotoRepository(db *gorm.DB) contract.PhotoRepository {
	return &PhotoRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *PhotoRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, photo *entity.ProfilePhoto) error {
	modelPhoto := r.mapper.PhotoToModel(photo)
	if err := r.db.WithContext(ctx).Create(modelPhoto).Error; err != nil {
		return err
	}
	*photo = *r.mapper.PhotoToEntity(modelPhoto)
	return nil
}

func (r *PhotoRepositoryImpl) Update(ctx context.Context, photo *entity.ProfilePhoto) error {
	modelPhoto := r.mapper.PhotoToModel(photo)
	if err := r.db.WithContext(ctx).Save(modelPhoto).Error; err != nil {
		return err
	}
	*photo = *r.mapper.PhotoToEntity(modelPhoto)
	return nil
}

func (r *PhotoRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProfilePhoto{}).Error
}

func (r *PhotoRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfilePhoto, error) {
	var modelPhoto model.ProfilePhoto
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPhoto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.PhotoToEntity(&modelPhoto), nil
}

func (r *PhotoRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProfilePhoto, error) {
	var modelPhotos []*model.ProfilePhoto
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPhotos).Error; err != nil {
		return nil, err
	}

	return r.mapper.PhotosToEntities(modelPhotos), nil
}

func (r *PhotoRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ProfilePhoto{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PhotoRepositoryImpl) FindByProfile(ctx context.Context, profileId uuid.UUID) ([]*entity.ProfilePhoto, error) {
	return r.FindAll(ctx,
		specification.ByProfileID{ProfileID: profileId},
		specification.PhotoDisplayOrder{},
	)
}

func (r *PhotoRepositoryImpl) CountByProfile(ctx context.Context, profileId uuid.UUID) (int64, error) {
	return r.Count(ctx, specification.ByProfileID{ProfileID: profileId})
}

func (r *PhotoRepositoryImpl) ClearPrimary(ctx context.Context, profileId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ProfilePhoto{}).
		Where("profile_id = ?", profileId).
		Update("is_primary", false).Error
}
