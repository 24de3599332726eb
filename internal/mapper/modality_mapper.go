package mapper

import (
	"ducochat-be/internal/entity"
	"ducochat-be/internal/model"
)

type ModalityMapper struct{}

func NewModalityMapper() *ModalityMapper {
	return &ModalityMapper{}
}

func (m *ModalityMapper) ToEntity(mo *model.Modality) *entity.Modality {
	if mo == nil {
		return nil
	}
	return &entity.Modality{
		Id:   mo.Id,
		Type: mo.Type,
	}
}

func (m *ModalityMapper) ToModel(mo *entity.Modality) *model.Modality {
	if mo == nil {
		return nil
	}
	return &model.Modality{
		Id:   mo.Id,
		Type: mo.Type,
	}
}

func (m *ModalityMapper) ToEntities(modalities []*model.Modality) []*entity.Modality {
	entities := make([]*entity.Modality, len(modalities))
	for i, mo := range modalities {
		entities[i] = m.ToEntity(mo)
	}
	return entities
}
