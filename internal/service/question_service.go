package service

import (
	"context"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
	"ducochat-be/internal/repository/unitofwork"
)

type IQuestionService interface {
	GetAll(ctx context.Context) ([]*dto.QuestionResponse, error)
	GetActive(ctx context.Context) ([]*dto.QuestionResponse, error)
	Show(ctx context.Context, id uint) (*dto.QuestionResponse, error)
	Create(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	Update(ctx context.Context, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	Toggle(ctx context.Context, id uint) (*dto.QuestionResponse, error)
	Delete(ctx context.Context, id uint) (*dto.DeleteQuestionResponse, error)
}

type questionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewQuestionService(uowFactory unitofwork.RepositoryFactory) IQuestionService {
	return &questionService{
		uowFactory: uowFactory,
	}
}

func toQuestionResponse(q *entity.Question) *dto.QuestionResponse {
	if q == nil {
		return nil
	}
	return &dto.QuestionResponse{
		Id:         q.Id,
		CategoryId: q.CategoryId,
		Question:   q.Question,
		Answer:     q.Answer,
		IsActive:   q.IsActive,
	}
}

func toQuestionResponses(questions []*entity.Question) []*dto.QuestionResponse {
	result := make([]*dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		result = append(result, toQuestionResponse(q))
	}
	return result
}

func (s *questionService) GetAll(ctx context.Context) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}
	return toQuestionResponses(questions), nil
}

func (s *questionService) GetActive(ctx context.Context) ([]*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}
	return toQuestionResponses(questions), nil
}

func (s *questionService) Show(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return toQuestionResponse(question), nil
}

func (s *questionService) Create(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// New questions start visible to the bot.
	question := entity.Question{
		CategoryId: req.CategoryId,
		Question:   req.Question,
		Answer:     req.Answer,
		IsActive:   true,
	}
	if err := uow.QuestionRepository().Create(ctx, &question); err != nil {
		return nil, err
	}
	return toQuestionResponse(&question), nil
}

func (s *questionService) Update(ctx context.Context, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, nil
	}

	question.CategoryId = req.CategoryId
	question.Question = req.Question
	question.Answer = req.Answer
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}
	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}
	return toQuestionResponse(question), nil
}

func (s *questionService) Toggle(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, nil
	}

	question.IsActive = !question.IsActive
	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}
	return toQuestionResponse(question), nil
}

func (s *questionService) Delete(ctx context.Context, id uint) (*dto.DeleteQuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, nil
	}

	if err := uow.QuestionRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteQuestionResponse{
		Message: "Pregunta eliminada",
		Deleted: toQuestionResponse(question),
	}, nil
}
