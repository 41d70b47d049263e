package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id                   uuid.UUID       `json:"id"`
	UserId               uuid.UUID       `json:"user_id"`
	DisplayName          string          `json:"display_name"`
	Birthdate            *string         `json:"birthdate,omitempty"`
	City                 string          `json:"city,omitempty"`
	Status               string          `json:"status"`
	CompletionPercentage int             `json:"completion_percentage"`
	PhotoCount           int             `json:"photo_count"`
	Photos               []PhotoResponse `json:"photos"`
	SubmittedAt          *time.Time      `json:"submitted_at,omitempty"`
	ReviewedAt           *time.Time      `json:"reviewed_at,omitempty"`
	ReviewNotes          string          `json:"review_notes,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=50"`
}

type PhotoResponse struct {
	Id         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	IsPrimary  bool      `json:"is_primary"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReorderPhotosRequest struct {
	PhotoIds []uuid.UUID `json:"photo_ids" validate:"required,min=1"`
}
