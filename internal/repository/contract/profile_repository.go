package contract

import (
	"context"

	"bloom-be/internal/entity"
	"bloom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByUserID(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateCompletion(ctx context.Context, id uuid.UUID, percentage, photoCount int) error
	UpdateReviewNotes(ctx context.Context, id uuid.UUID, notes string) error
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.ProfilePhoto) error
	Update(ctx context.Context, photo *entity.ProfilePhoto) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProfilePhoto, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProfilePhoto, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindByProfile lists photos primary-first, then order_index ascending.
	FindByProfile(ctx context.Context, profileId uuid.UUID) ([]*entity.ProfilePhoto, error)
	CountByProfile(ctx context.Context, profileId uuid.UUID) (int64, error)
	ClearPrimary(ctx context.Context, profileId uuid.UUID) error
}
