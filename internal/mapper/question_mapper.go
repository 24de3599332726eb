package mapper

import (
	"ducochat-be/internal/entity"
	"ducochat-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:         q.Id,
		CategoryId: q.CategoryId,
		Question:   q.Question,
		Answer:     q.Answer,
		IsActive:   q.IsActive,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:         q.Id,
		CategoryId: q.CategoryId,
		Question:   q.Question,
		Answer:     q.Answer,
		IsActive:   q.IsActive,
	}
}

func (m *QuestionMapper) ToEntities(questions []*model.Question) []*entity.Question {
	entities := make([]*entity.Question, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
