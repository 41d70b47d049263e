package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Question struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Position int       `gorm:"column:position;not null;index"`
	Prompt   string    `gorm:"type:text;not null"`
	Subtitle string    `gorm:"type:text"`
	HelpText string    `gorm:"type:text"`

	InputType string         `gorm:"type:varchar(50);not null"`
	Options   datatypes.JSON `gorm:"type:jsonb"`
	Rules     datatypes.JSON `gorm:"type:jsonb"`

	IconName string `gorm:"type:varchar(100)"`
	Section  string `gorm:"type:varchar(50);not null;default:'profile'"`

	InsertsTransitionAfter bool `gorm:"default:false"`
	Active                 bool `gorm:"default:true"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}
