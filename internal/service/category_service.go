package service

import (
	"context"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
	"ducochat-be/internal/repository/unitofwork"
)

type ICategoryService interface {
	GetAll(ctx context.Context) ([]*dto.CategoryResponse, error)
	Show(ctx context.Context, id uint) (*dto.CategoryResponse, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uint) (*dto.DeleteCategoryResponse, error)
}

type categoryService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory) ICategoryService {
	return &categoryService{
		uowFactory: uowFactory,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		Id:   c.Id,
		Name: c.Name,
	}
}

func (s *categoryService) GetAll(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, toCategoryResponse(c))
	}
	return result, nil
}

func (s *categoryService) Show(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := entity.Category{
		Name: req.Name,
	}
	if err := uow.CategoryRepository().Create(ctx, &category); err != nil {
		return nil, err
	}
	return toCategoryResponse(&category), nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	category.Name = req.Name
	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) (*dto.DeleteCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteCategoryResponse{
		Message: "Categoría eliminada",
		Deleted: toCategoryResponse(category),
	}, nil
}
