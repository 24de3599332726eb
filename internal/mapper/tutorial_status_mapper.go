package mapper

import (
	"ducochat-be/internal/entity"
	"ducochat-be/internal/model"
)

type TutorialStatusMapper struct{}

func NewTutorialStatusMapper() *TutorialStatusMapper {
	return &TutorialStatusMapper{}
}

func (m *TutorialStatusMapper) ToEntity(t *model.TutorialStatus) *entity.TutorialStatus {
	if t == nil {
		return nil
	}
	return &entity.TutorialStatus{
		Id:   t.Id,
		Rut:  t.Rut,
		Seen: t.Seen,
		Date: t.Date,
	}
}

func (m *TutorialStatusMapper) ToModel(t *entity.TutorialStatus) *model.TutorialStatus {
	if t == nil {
		return nil
	}
	return &model.TutorialStatus{
		Id:   t.Id,
		Rut:  t.Rut,
		Seen: t.Seen,
		Date: t.Date,
	}
}

func (m *TutorialStatusMapper) ToEntities(statuses []*model.TutorialStatus) []*entity.TutorialStatus {
	entities := make([]*entity.TutorialStatus, len(statuses))
	for i, t := range statuses {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
