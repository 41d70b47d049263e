package entity

import (
	"time"

	"bloom-be/pkg/questionnaire"

	"github.com/google/uuid"
)

// Question is one catalog row. The stable string Key (not the row UUID) is
// what answers reference, so catalog rows can be reseeded without orphaning
// answer data.
type Question struct {
	Id       uuid.UUID
	Key      string
	Order    int
	Prompt   string
	Subtitle string
	HelpText string

	InputType questionnaire.InputType
	Options   questionnaire.Options
	Rules     questionnaire.Rules

	IconName string
	Section  questionnaire.Section

	InsertsTransitionAfter bool
	Active                 bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToCore converts the catalog row into the flow engine's question type.
func (q *Question) ToCore() questionnaire.Question {
	return questionnaire.Question{
		ID:                     q.Key,
		Order:                  q.Order,
		Prompt:                 q.Prompt,
		Subtitle:               q.Subtitle,
		HelpText:               q.HelpText,
		InputType:              q.InputType,
		Options:                q.Options,
		Rules:                  q.Rules,
		IconName:               q.IconName,
		Section:                q.Section,
		InsertsTransitionAfter: q.InsertsTransitionAfter,
	}
}

// CatalogToCore maps an ordered row set to the engine catalog.
func CatalogToCore(rows []*Question) questionnaire.Catalog {
	catalog := make(questionnaire.Catalog, len(rows))
	for i, q := range rows {
		catalog[i] = q.ToCore()
	}
	return catalog
}
