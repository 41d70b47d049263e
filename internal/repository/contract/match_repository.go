package contract

import (
	"context"

	"bloom-be/internal/entity"
	"bloom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MatchRepository interface {
	Create(ctx context.Context, match *entity.Match) error
	Update(ctx context.Context, match *entity.Match) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindForProfile(ctx context.Context, profileId uuid.UUID) ([]*entity.Match, error)
	FindPair(ctx context.Context, a, b uuid.UUID) (*entity.Match, error)
}
