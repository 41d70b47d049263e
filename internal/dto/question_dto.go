package dto

import "bloom-be/pkg/questionnaire"

type QuestionOptionsResponse struct {
	Choices    []string `json:"choices,omitempty"`
	Min        float64  `json:"min,omitempty"`
	Max        float64  `json:"max,omitempty"`
	Default    float64  `json:"default,omitempty"`
	MinLabel   string   `json:"min_label,omitempty"`
	MaxLabel   string   `json:"max_label,omitempty"`
	FieldCount int      `json:"field_count,omitempty"`
}

type QuestionRulesResponse struct {
	MinSelections int `json:"min_selections,omitempty"`
	MaxSelections int `json:"max_selections,omitempty"`
	MaxLength     int `json:"max_length,omitempty"`
}

type QuestionResponse struct {
	Key                    string                  `json:"key"`
	Order                  int                     `json:"order"`
	Prompt                 string                  `json:"prompt"`
	Subtitle               string                  `json:"subtitle,omitempty"`
	HelpText               string                  `json:"help_text,omitempty"`
	InputType              string                  `json:"input_type"`
	Section                string                  `json:"section"`
	IconName               string                  `json:"icon_name,omitempty"`
	InsertsTransitionAfter bool                    `json:"inserts_transition_after"`
	Options                QuestionOptionsResponse `json:"options"`
	Rules                  QuestionRulesResponse   `json:"rules"`
}

type CatalogResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}

type UpsertQuestionRequest struct {
	Key                    string   `json:"key" validate:"required,min=2"`
	Prompt                 string   `json:"prompt" validate:"required"`
	Subtitle               string   `json:"subtitle"`
	HelpText               string   `json:"help_text"`
	InputType              string   `json:"input_type" validate:"required,oneof=text textarea single_choice multiple_choice autocomplete date number scale"`
	Section                string   `json:"section" validate:"required,oneof=profile preference"`
	IconName               string   `json:"icon_name"`
	Order                  int      `json:"order" validate:"gte=0"`
	InsertsTransitionAfter bool     `json:"inserts_transition_after"`
	Active                 bool     `json:"active"`
	Choices                []string `json:"choices"`
	Min                    float64  `json:"min"`
	Max                    float64  `json:"max"`
	Default                float64  `json:"default"`
	MinLabel               string   `json:"min_label"`
	MaxLabel               string   `json:"max_label"`
	FieldCount             int      `json:"field_count"`
	MinSelections          int      `json:"min_selections"`
	MaxSelections          int      `json:"max_selections"`
	MaxLength              int      `json:"max_length"`
}

func QuestionToResponse(q questionnaire.Question) QuestionResponse {
	return QuestionResponse{
		Key:                    q.ID,
		Order:                  q.Order,
		Prompt:                 q.Prompt,
		Subtitle:               q.Subtitle,
		HelpText:               q.HelpText,
		InputType:              string(q.InputType),
		Section:                string(q.Section),
		IconName:               q.IconName,
		InsertsTransitionAfter: q.InsertsTransitionAfter,
		Options: QuestionOptionsResponse{
			Choices:    q.Options.Choices,
			Min:        q.Options.Min,
			Max:        q.Options.Max,
			Default:    q.Options.Default,
			MinLabel:   q.Options.MinLabel,
			MaxLabel:   q.Options.MaxLabel,
			FieldCount: q.Options.FieldCount,
		},
		Rules: QuestionRulesResponse{
			MinSelections: q.Rules.MinSelections,
			MaxSelections: q.Rules.MaxSelections,
			MaxLength:     q.Rules.MaxLength,
		},
	}
}
