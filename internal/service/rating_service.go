package service

import (
	"context"
	"strings"
	"time"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
	"ducochat-be/internal/repository/unitofwork"
	"ducochat-be/pkg/events"
)

type IRatingService interface {
	GetAll(ctx context.Context) ([]*dto.EnrichedRatingResponse, error)
	Create(ctx context.Context, req *dto.CreateRatingRequest) (*dto.RatingResponse, error)
	Update(ctx context.Context, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error)
	Delete(ctx context.Context, id uint) (*dto.DeleteRatingResponse, error)
}

type ratingService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IEventPublisher
}

func NewRatingService(uowFactory unitofwork.RepositoryFactory, eventPublisher IEventPublisher) IRatingService {
	return &ratingService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toRatingResponse(r *entity.Rating) *dto.RatingResponse {
	if r == nil {
		return nil
	}
	return &dto.RatingResponse{
		Id:      r.Id,
		Score:   r.Score,
		Comment: r.Comment,
		Date:    r.Date,
		Rut:     r.Rut,
	}
}

// enrich joins a rating with its author and modality. Missing users or
// modalities fall back to the placeholder strings the dashboard expects.
func (s *ratingService) enrich(ctx context.Context, uow unitofwork.UnitOfWork, r *entity.Rating) *dto.EnrichedRatingResponse {
	enriched := &dto.EnrichedRatingResponse{
		Id:         r.Id,
		Score:      r.Score,
		Comment:    r.Comment,
		Date:       r.Date,
		Rut:        r.Rut,
		Nombre:     "Estudiante sin nombre",
		Correo:     "Sin correo",
		RutUsuario: "Sin RUT",
		Modalidad:  "Sin modalidad",
	}

	if r.Rut == "" {
		return enriched
	}

	user, err := uow.EndUserRepository().FindOne(ctx, specification.ByRut{Rut: r.Rut})
	if err != nil || user == nil {
		return enriched
	}

	if name := strings.TrimSpace(user.FirstName + " " + user.LastName); name != "" {
		enriched.Nombre = name
	}
	if user.InstitutionalEmail != "" {
		enriched.Correo = user.InstitutionalEmail
	}
	enriched.RutUsuario = user.Rut

	if user.ModalityId != 0 {
		modality, err := uow.ModalityRepository().FindOne(ctx,
			specification.FilterBy{Field: "id_modality", Value: user.ModalityId})
		if err == nil && modality != nil {
			enriched.Modalidad = modality.Type
		}
	}
	return enriched
}

func (s *ratingService) GetAll(ctx context.Context) ([]*dto.EnrichedRatingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ratings, err := uow.RatingRepository().FindAll(ctx, specification.OrderBy{Field: "date", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EnrichedRatingResponse, 0, len(ratings))
	for _, r := range ratings {
		result = append(result, s.enrich(ctx, uow, r))
	}
	return result, nil
}

func (s *ratingService) Create(ctx context.Context, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rating := entity.Rating{
		Rut:     req.Rut,
		Score:   req.Score,
		Comment: req.Comment,
		Date:    time.Now(),
	}
	if err := uow.RatingRepository().Create(ctx, &rating); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		enriched := s.enrich(ctx, uow, &rating)
		payload := map[string]interface{}{
			"id":          enriched.Id,
			"score":       enriched.Score,
			"comment":     enriched.Comment,
			"date":        enriched.Date,
			"rut":         enriched.Rut,
			"nombre":      enriched.Nombre,
			"correo":      enriched.Correo,
			"rut_usuario": enriched.RutUsuario,
			"modalidad":   enriched.Modalidad,
		}
		// Best effort: the rating is stored either way.
		_ = s.eventPublisher.Publish(ctx, events.NewRatingCreated(payload))
	}

	return toRatingResponse(&rating), nil
}

func (s *ratingService) Update(ctx context.Context, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rating, err := uow.RatingRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, nil
	}

	rating.Rut = req.Rut
	rating.Score = req.Score
	rating.Comment = req.Comment
	if err := uow.RatingRepository().Update(ctx, rating); err != nil {
		return nil, err
	}
	return toRatingResponse(rating), nil
}

func (s *ratingService) Delete(ctx context.Context, id uint) (*dto.DeleteRatingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rating, err := uow.RatingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, nil
	}

	if err := uow.RatingRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteRatingResponse{
		Message: "Calificación eliminada",
		Deleted: toRatingResponse(rating),
	}, nil
}
