package mapper

import (
	"ducochat-be/internal/entity"
	"ducochat-be/internal/model"
)

type EndUserMapper struct{}

func NewEndUserMapper() *EndUserMapper {
	return &EndUserMapper{}
}

func (m *EndUserMapper) ToEntity(u *model.EndUser) *entity.EndUser {
	if u == nil {
		return nil
	}
	return &entity.EndUser{
		Rut:                u.Rut,
		InstitutionalEmail: u.InstitutionalEmail,
		Gender:             u.Gender,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Phone:              u.Phone,
		ModalityId:         u.ModalityId,
		CreatedAt:          u.CreatedAt,
	}
}

func (m *EndUserMapper) ToModel(u *entity.EndUser) *model.EndUser {
	if u == nil {
		return nil
	}
	return &model.EndUser{
		Rut:                u.Rut,
		InstitutionalEmail: u.InstitutionalEmail,
		Gender:             u.Gender,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Phone:              u.Phone,
		ModalityId:         u.ModalityId,
		CreatedAt:          u.CreatedAt,
	}
}

func (m *EndUserMapper) ToEntities(users []*model.EndUser) []*entity.EndUser {
	entities := make([]*entity.EndUser, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
