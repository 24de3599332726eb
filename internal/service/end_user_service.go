package service

import (
	"context"
	"time"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
	"ducochat-be/internal/repository/unitofwork"
)

type IEndUserService interface {
	GetAll(ctx context.Context) ([]*dto.EndUserResponse, error)
	Show(ctx context.Context, rut string) (*dto.EndUserResponse, error)
	Create(ctx context.Context, req *dto.CreateEndUserRequest) (*dto.EndUserResponse, error)
	Update(ctx context.Context, rut string, req *dto.UpdateEndUserRequest) (*dto.EndUserResponse, error)
	Delete(ctx context.Context, rut string) (*dto.DeleteEndUserResponse, error)
}

type endUserService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEndUserService(uowFactory unitofwork.RepositoryFactory) IEndUserService {
	return &endUserService{
		uowFactory: uowFactory,
	}
}

func toEndUserResponse(u *entity.EndUser) *dto.EndUserResponse {
	if u == nil {
		return nil
	}
	return &dto.EndUserResponse{
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

func (s *endUserService) GetAll(ctx context.Context) ([]*dto.EndUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.EndUserRepository().FindAll(ctx, specification.OrderBy{Field: "rut"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EndUserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toEndUserResponse(u))
	}
	return result, nil
}

func (s *endUserService) Show(ctx context.Context, rut string) (*dto.EndUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.EndUserRepository().FindOne(ctx, specification.ByRut{Rut: rut})
	if err != nil {
		return nil, err
	}
	return toEndUserResponse(user), nil
}

func (s *endUserService) Create(ctx context.Context, req *dto.CreateEndUserRequest) (*dto.EndUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user := entity.EndUser{
		Rut:                req.Rut,
		InstitutionalEmail: req.InstitutionalEmail,
		Gender:             req.Gender,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		ModalityId:         req.ModalityId,
		CreatedAt:          time.Now(),
	}
	if err := uow.EndUserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}
	return toEndUserResponse(&user), nil
}

func (s *endUserService) Update(ctx context.Context, rut string, req *dto.UpdateEndUserRequest) (*dto.EndUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.EndUserRepository().FindOne(ctx, specification.ByRut{Rut: rut})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if req.Rut != "" {
		user.Rut = req.Rut
	}
	if req.InstitutionalEmail != "" {
		user.InstitutionalEmail = req.InstitutionalEmail
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ModalityId != 0 {
		user.ModalityId = req.ModalityId
	}
	if err := uow.EndUserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return toEndUserResponse(user), nil
}

func (s *endUserService) Delete(ctx context.Context, rut string) (*dto.DeleteEndUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.EndUserRepository().FindOne(ctx, specification.ByRut{Rut: rut})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := uow.EndUserRepository().Delete(ctx, rut); err != nil {
		return nil, err
	}
	return &dto.DeleteEndUserResponse{
		Message: "Usuario eliminado",
		Deleted: toEndUserResponse(user),
	}, nil
}
