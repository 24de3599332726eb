package mapper

import (
	"ducochat-be/internal/entity"
	"ducochat-be/internal/model"
)

type RatingMapper struct{}

func NewRatingMapper() *RatingMapper {
	return &RatingMapper{}
}

func (m *RatingMapper) ToEntity(r *model.Rating) *entity.Rating {
	if r == nil {
		return nil
	}
	return &entity.Rating{
		Id:      r.Id,
		Rut:     r.Rut,
		Score:   r.Score,
		Comment: r.Comment,
		Date:    r.Date,
	}
}

func (m *RatingMapper) ToModel(r *entity.Rating) *model.Rating {
	if r == nil {
		return nil
	}
	return &model.Rating{
		Id:      r.Id,
		Rut:     r.Rut,
		Score:   r.Score,
		Comment: r.Comment,
		Date:    r.Date,
	}
}

func (m *RatingMapper) ToEntities(ratings []*model.Rating) []*entity.Rating {
	entities := make([]*entity.Rating, len(ratings))
	for i, r := range ratings {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
