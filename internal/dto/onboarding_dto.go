package dto

import "bloom-be/pkg/questionnaire"

type OnboardingStateResponse struct {
	Step            string            `json:"step"`
	Question        *QuestionResponse `json:"question,omitempty"`
	ProgressCurrent int               `json:"progress_current"`
	ProgressTotal   int               `json:"progress_total"`
	ProgressPercent float64           `json:"progress_percent"`
	PhotoCount      int               `json:"photo_count"`
}

type AdvanceRequest struct {
	QuestionKey string                    `json:"question_key" validate:"required"`
	Value       questionnaire.AnswerValue `json:"value"`
}

// AdvanceResponse reports both the navigation outcome and whether the
// background save landed. A failed save never blocks navigation.
type AdvanceResponse struct {
	State     OnboardingStateResponse `json:"state"`
	Saved     bool                    `json:"saved"`
	SaveError string                  `json:"save_error,omitempty"`
}

type SubmitProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
