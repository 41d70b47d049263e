package mapper

import (
	"bloom-be/internal/entity"
	"bloom-be/internal/model"
)

type MatchMapper struct{}

func NewMatchMapper() *MatchMapper {
	return &MatchMapper{}
}

func (m *MatchMapper) ToEntity(match *model.Match) *entity.Match {
	if match == nil {
		return nil
	}
	return &entity.Match{
		Id:                 match.Id,
		ProfileAId:         match.ProfileAId,
		ProfileBId:         match.ProfileBId,
		CompatibilityScore: match.CompatibilityScore,
		Status:             entity.MatchStatus(match.Status),
		AAccepted:          match.AAccepted,
		BAccepted:          match.BAccepted,
		CreatedAt:          match.CreatedAt,
		UpdatedAt:          match.UpdatedAt,
	}
}

func (m *MatchMapper) ToModel(match *entity.Match) *model.Match {
	if match == nil {
		return nil
	}
	return &model.Match{
		Id:                 match.Id,
		ProfileAId:         match.ProfileAId,
		ProfileBId:         match.ProfileBId,
		CompatibilityScore: match.CompatibilityScore,
		Status:             string(match.Status),
		AAccepted:          match.AAccepted,
		BAccepted:          match.BAccepted,
		CreatedAt:          match.CreatedAt,
		UpdatedAt:          match.UpdatedAt,
	}
}

func (m *MatchMapper) ToEntities(matches []*model.Match) []*entity.Match {
	entities := make([]*entity.Match, len(matches))
	for i, match := range matches {
		entities[i] = m.ToEntity(match)
	}
	return entities
}
