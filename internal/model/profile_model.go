package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	DisplayName string  `gorm:"type:varchar(255)"`
	Birthdate   *string `gorm:"type:varchar(10)"`
	City        string  `gorm:"type:varchar(255)"`

	Status               string `gorm:"type:varchar(50);not null;default:'incomplete';index"`
	CompletionPercentage int    `gorm:"default:0"`
	PhotoCount           int    `gorm:"default:0"`

	ReviewNotes *string    `gorm:"type:text"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt  *time.Time
	SubmittedAt *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}

type ProfilePhoto struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfileId  uuid.UUID `gorm:"type:uuid;not null;index"`
	URL        string    `gorm:"type:text;not null"`
	OrderIndex int       `gorm:"not null;default:0"`
	IsPrimary  bool      `gorm:"default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ProfilePhoto) TableName() string {
	return "profile_photos"
}
