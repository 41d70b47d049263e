package unitofwork

import (
	"context"

	"bloom-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	QuestionRepository() contract.QuestionRepository
	AnswerRepository() contract.AnswerRepository
	ProfileRepository() contract.ProfileRepository
	PhotoRepository() contract.PhotoRepository
	MatchRepository() contract.MatchRepository
}
