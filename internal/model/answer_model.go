package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Answer rows are unique per (user_id, question_key); writes upsert on that
// composite key so re-saving the same question never produces a second row.
type Answer struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_answers_user_question"`
	QuestionKey string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_answers_user_question"`
	Value       datatypes.JSON `gorm:"type:jsonb;not null"`
	SavedAt     time.Time      `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Answer) TableName() string {
	return "answers"
}
