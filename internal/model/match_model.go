package model

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfileAId uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_matches_pair"`
	ProfileBId uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_matches_pair"`

	CompatibilityScore int    `gorm:"default:0"`
	Status             string `gorm:"type:varchar(50);not null;default:'suggested';index"`

	AAccepted *bool
	BAccepted *bool

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Match) TableName() string {
	return "matches"
}
