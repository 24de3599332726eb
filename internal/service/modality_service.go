package service

import (
	"context"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
	"ducochat-be/internal/repository/unitofwork"
)

type IModalityService interface {
	GetAll(ctx context.Context) ([]*dto.ModalityResponse, error)
	Show(ctx context.Context, id uint) (*dto.ModalityResponse, error)
	Create(ctx context.Context, req *dto.CreateModalityRequest) (*dto.ModalityResponse, error)
	Update(ctx context.Context, req *dto.UpdateModalityRequest) (*dto.ModalityResponse, error)
	Delete(ctx context.Context, id uint) (*dto.DeleteModalityResponse, error)
}

type modalityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewModalityService(uowFactory unitofwork.RepositoryFactory) IModalityService {
	return &modalityService{
		uowFactory: uowFactory,
	}
}

func toModalityResponse(m *entity.Modality) *dto.ModalityResponse {
	if m == nil {
		return nil
	}
	return &dto.ModalityResponse{
		Id:   m.Id,
		Type: m.Type,
	}
}

func (s *modalityService) GetAll(ctx context.Context) ([]*dto.ModalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	modalities, err := uow.ModalityRepository().FindAll(ctx, specification.OrderBy{Field: "id_modality"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ModalityResponse, 0, len(modalities))
	for _, m := range modalities {
		result = append(result, toModalityResponse(m))
	}
	return result, nil
}

func (s *modalityService) Show(ctx context.Context, id uint) (*dto.ModalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	modality, err := uow.ModalityRepository().FindOne(ctx, specification.FilterBy{Field: "id_modality", Value: id})
	if err != nil {
		return nil, err
	}
	return toModalityResponse(modality), nil
}

func (s *modalityService) Create(ctx context.Context, req *dto.CreateModalityRequest) (*dto.ModalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	modality := entity.Modality{
		Type: req.Type,
	}
	if err := uow.ModalityRepository().Create(ctx, &modality); err != nil {
		return nil, err
	}
	return toModalityResponse(&modality), nil
}

func (s *modalityService) Update(ctx context.Context, req *dto.UpdateModalityRequest) (*dto.ModalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	modality, err := uow.ModalityRepository().FindOne(ctx, specification.FilterBy{Field: "id_modality", Value: req.Id})
	if err != nil {
		return nil, err
	}
	if modality == nil {
		return nil, nil
	}

	modality.Type = req.Type
	if err := uow.ModalityRepository().Update(ctx, modality); err != nil {
		return nil, err
	}
	return toModalityResponse(modality), nil
}

func (s *modalityService) Delete(ctx context.Context, id uint) (*dto.DeleteModalityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	modality, err := uow.ModalityRepository().FindOne(ctx, specification.FilterBy{Field: "id_modality", Value: id})
	if err != nil {
		return nil, err
	}
	if modality == nil {
		return nil, nil
	}

	if err := uow.ModalityRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteModalityResponse{
		Message: "Modalidad eliminada",
		Deleted: toModalityResponse(modality),
	}, nil
}
