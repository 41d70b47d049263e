package mapper

import (
	"bloom-be/internal/entity"
	"bloom-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:                   p.Id,
		UserId:               p.UserId,
		DisplayName:          p.DisplayName,
		Birthdate:            p.Birthdate,
		City:                 p.City,
		Status:               entity.ProfileStatus(p.Status),
		CompletionPercentage: p.CompletionPercentage,
		PhotoCount:           p.PhotoCount,
		ReviewNotes:          p.ReviewNotes,
		ReviewedBy:           p.ReviewedBy,
		ReviewedAt:           p.ReviewedAt,
		SubmittedAt:          p.SubmittedAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:                   p.Id,
		UserId:               p.UserId,
		DisplayName:          p.DisplayName,
		Birthdate:            p.Birthdate,
		City:                 p.City,
		Status:               string(p.Status),
		CompletionPercentage: p.CompletionPercentage,
		PhotoCount:           p.PhotoCount,
		ReviewNotes:          p.ReviewNotes,
		ReviewedBy:           p.ReviewedBy,
		ReviewedAt:           p.ReviewedAt,
		SubmittedAt:          p.SubmittedAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToEntities(profiles []*model.Profile) []*entity.Profile {
	entities := make([]*entity.Profile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProfileMapper) PhotoToEntity(p *model.ProfilePhoto) *entity.ProfilePhoto {
	if p == nil {
		return nil
	}
	return &entity.ProfilePhoto{
		Id:         p.Id,
		ProfileId:  p.ProfileId,
		URL:        p.URL,
		OrderIndex: p.OrderIndex,
		IsPrimary:  p.IsPrimary,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *ProfileMapper) PhotoToModel(p *entity.ProfilePhoto) *model.ProfilePhoto {
	if p == nil {
		return nil
	}
	return &model.ProfilePhoto{
		Id:         p.Id,
		ProfileId:  p.ProfileId,
		URL:        p.URL,
		OrderIndex: p.OrderIndex,
		IsPrimary:  p.IsPrimary,
		CreatedAt:  p.CreatedAt,
	}
}

func (m *ProfileMapper) PhotosToEntities(photos []*model.ProfilePhoto) []*entity.ProfilePhoto {
	entities := make([]*entity.ProfilePhoto, len(photos))
	for i, p := range photos {
		entities[i] = m.PhotoToEntity(p)
	}
	return entities
}
