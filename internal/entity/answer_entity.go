package entity

import (
	"time"

	"bloom-be/pkg/questionnaire"

	"github.com/google/uuid"
)

// Answer is one (user, question) record. At most one row exists per pair;
// saves upsert in place and rows are never deleted during onboarding.
type Answer struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	QuestionKey string
	Value       questionnaire.AnswerValue
	SavedAt     time.Time
}
