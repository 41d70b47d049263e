package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatchResponse struct {
	Id            uuid.UUID       `json:"id"`
	Status        string          `json:"status"`
	Compatibility float64         `json:"compatibility"`
	Other         MatchCardDetail `json:"other"`
	MyDecision    *bool           `json:"my_decision,omitempty"`
	TheirDecision *bool           `json:"their_decision,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type MatchCardDetail struct {
	ProfileId   uuid.UUID       `json:"profile_id"`
	DisplayName string          `json:"display_name"`
	Photos      []PhotoResponse `json:"photos"`
	MBTIType    string          `json:"mbti_type,omitempty"`
}

type MatchBoardResponse struct {
	Matches []MatchResponse `json:"matches"`
	Total   int             `json:"total"`
}

type CreateMatchRequest struct {
	ProfileAId uuid.UUID `json:"profile_a_id" validate:"required"`
	ProfileBId uuid.UUID `json:"profile_b_id" validate:"required"`
}

type RespondMatchRequest struct {
	Accept bool `json:"accept"`
}
