package mapper

import (
	"encoding/json"

	"bloom-be/internal/entity"
	"bloom-be/internal/model"
	"bloom-be/pkg/questionnaire"

	"gorm.io/datatypes"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	var options questionnaire.Options
	if len(q.Options) > 0 {
		// Malformed payloads degrade to zero options rather than failing
		// the whole catalog fetch.
		_ = json.Unmarshal(q.Options, &options)
	}
	var rules questionnaire.Rules
	if len(q.Rules) > 0 {
		_ = json.Unmarshal(q.Rules, &rules)
	}
	return &entity.Question{
		Id:                     q.Id,
		Key:                    q.Key,
		Order:                  q.Position,
		Prompt:                 q.Prompt,
		Subtitle:               q.Subtitle,
		HelpText:               q.HelpText,
		InputType:              questionnaire.InputType(q.InputType),
		Options:                options,
		Rules:                  rules,
		IconName:               q.IconName,
		Section:                questionnaire.Section(q.Section),
		InsertsTransitionAfter: q.InsertsTransitionAfter,
		Active:                 q.Active,
		CreatedAt:              q.CreatedAt,
		UpdatedAt:              q.UpdatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	options, _ := json.Marshal(q.Options)
	rules, _ := json.Marshal(q.Rules)
	return &model.Question{
		Id:                     q.Id,
		Key:                    q.Key,
		Position:               q.Order,
		Prompt:                 q.Prompt,
		Subtitle:               q.Subtitle,
		HelpText:               q.HelpText,
		InputType:              string(q.InputType),
		Options:                datatypes.JSON(options),
		Rules:                  datatypes.JSON(rules),
		IconName:               q.IconName,
		Section:                string(q.Section),
		InsertsTransitionAfter: q.InsertsTransitionAfter,
		Active:                 q.Active,
		CreatedAt:              q.CreatedAt,
		UpdatedAt:              q.UpdatedAt,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
