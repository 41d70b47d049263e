package contract

import (
	"context"

	"bloom-be/internal/entity"
	"bloom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AnswerRepository interface {
	// Upsert writes the answer with ON CONFLICT (user_id, question_key)
	// DO UPDATE. Last write wins; at most one row per pair ever exists.
	Upsert(ctx context.Context, answer *entity.Answer) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Answer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Answer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Answer, error)
	FindByUserAndKey(ctx context.Context, userId uuid.UUID, questionKey string) (*entity.Answer, error)
	CountByUser(ctx context.Context, userId uuid.UUID) (int64, error)
}
