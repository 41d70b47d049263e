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

type MatchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewMatchRepository(db *gorm.DB) contract.MatchRepository {
	return &MatchRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *MatchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MatchRepositoryImpl) Create(ctx context.Context, match *entity.Match) error {
	modelMatch := r.mapper.ToModel(match)
	if err := r.db.WithContext(ctx).Create(modelMatch).Error; err != nil {
		return err
	}
	*match = *r.mapper.ToEntity(modelMatch)
	return nil
}

func (r *MatchRepositoryImpl) Update(ctx context.Context, match *entity.Match) error {
	modelMatch := r.mapper.ToModel(match)
	if err := r.db.WithContext(ctx).Save(modelMatch).Error; err != nil {
		return err
	}
	*match = *r.mapper.ToEntity(modelMatch)
	return nil
}

func (r *MatchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error) {
	var modelMatch model.Match
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelMatch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelMatch), nil
}

func (r *MatchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error) {
	var modelMatches []*model.Match
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMatches).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelMatches), nil
}

func (r *MatchRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Match{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MatchRepositoryImpl) FindForProfile(ctx context.Context, profileId uuid.UUID) ([]*entity.Match, error) {
	return r.FindAll(ctx,
		specification.ForProfile{ProfileID: profileId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
}

// FindPair looks the pair up in both orientations.
func (r *MatchRepositoryImpl) FindPair(ctx context.Context, a, b uuid.UUID) (*entity.Match, error) {
	var modelMatch model.Match
	err := r.db.WithContext(ctx).
		Where("(profile_a_id = ? AND profile_b_id = ?) OR (profile_a_id = ? AND profile_b_id = ?)", a, b, b, a).
		First(&modelMatch).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelMatch), nil
}
