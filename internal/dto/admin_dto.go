package dto

import (
	"time"

	"github.com/google/uuid"
)

type PendingProfileResponse struct {
	Profile     ProfileResponse  `json:"profile"`
	Email       string           `json:"email"`
	Answers     []AnswerResponse `json:"answers"`
	SubmittedAt *time.Time       `json:"submitted_at,omitempty"`
}

type PendingProfileListResponse struct {
	Profiles []PendingProfileResponse `json:"profiles"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	Limit    int                      `json:"limit"`
}

type ReviewProfileRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type ReviewProfileResponse struct {
	ProfileId  uuid.UUID `json:"profile_id"`
	Status     string    `json:"status"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

type SaveReviewNotesRequest struct {
	Notes string `json:"notes" validate:"required,max=2000"`
}

type BlockUserRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}
