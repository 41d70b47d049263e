package dto

import (
	"time"

	"bloom-be/pkg/questionnaire"
)

type SaveAnswerRequest struct {
	QuestionKey string                    `json:"question_key" validate:"required"`
	Value       questionnaire.AnswerValue `json:"value" validate:"required"`
}

type AnswerResponse struct {
	QuestionKey string                    `json:"question_key"`
	Value       questionnaire.AnswerValue `json:"value"`
	SavedAt     time.Time                 `json:"saved_at"`
}

type AnswerListResponse struct {
	Answers []AnswerResponse `json:"answers"`
	Total   int              `json:"total"`
}
