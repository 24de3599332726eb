package service

import (
	"context"

	"ducochat-be/internal/repository/specification"
	"ducochat-be/internal/repository/unitofwork"
	"ducochat-be/pkg/bot"
)

// botDataService feeds the conversation engine with the FAQ catalog.
// Only categories with at least one active question make it into the menu.
type botDataService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewBotDataService(uowFactory unitofwork.RepositoryFactory) bot.DataAccess {
	return &botDataService{
		uowFactory: uowFactory,
	}
}

func (s *botDataService) ListMenuCategories(ctx context.Context) ([]bot.Category, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ids, err := uow.QuestionRepository().DistinctActiveCategoryIds(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []bot.Category{}, nil
	}

	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]bot.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, bot.Category{Id: c.Id, Name: c.Name})
	}
	return result, nil
}

func (s *botDataService) ListCategoryQuestions(ctx context.Context, categoryId uint) ([]bot.Question, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	questions, err := uow.QuestionRepository().FindAll(ctx,
		specification.ByCategoryID{CategoryID: categoryId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]bot.Question, 0, len(questions))
	for _, q := range questions {
		result = append(result, bot.Question{Id: q.Id, Text: q.Question, Answer: q.Answer})
	}
	return result, nil
}
