package contract

import (
	"context"

	"bloom-be/internal/entity"
	"bloom-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindCatalog returns the active catalog in canonical order.
	FindCatalog(ctx context.Context) ([]*entity.Question, error)
}
