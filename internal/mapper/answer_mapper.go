package mapper

import (
	"bloom-be/internal/entity"
	"bloom-be/internal/model"
	"bloom-be/pkg/questionnaire"

	"gorm.io/datatypes"
)

type AnswerMapper struct{}

func NewAnswerMapper() *AnswerMapper {
	return &AnswerMapper{}
}

func (m *AnswerMapper) ToEntity(a *model.Answer) *entity.Answer {
	if a == nil {
		return nil
	}
	value, err := questionnaire.DecodeValue(a.Value)
	if err != nil {
		// An undecodable blob behaves like an unanswered question.
		value = questionnaire.AnswerValue{}
	}
	return &entity.Answer{
		Id:          a.Id,
		UserId:      a.UserId,
		QuestionKey: a.QuestionKey,
		Value:       value,
		SavedAt:     a.SavedAt,
	}
}

func (m *AnswerMapper) ToModel(a *entity.Answer) *model.Answer {
	if a == nil {
		return nil
	}
	data, _ := a.Value.Encode()
	return &model.Answer{
		Id:          a.Id,
		UserId:      a.UserId,
		QuestionKey: a.QuestionKey,
		Value:       datatypes.JSON(data),
		SavedAt:     a.SavedAt,
	}
}

func (m *AnswerMapper) ToEntities(answers []*model.Answer) []*entity.Answer {
	entities := make([]*entity.Answer, len(answers))
	for i, a := range answers {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
