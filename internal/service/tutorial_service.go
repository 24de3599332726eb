package service

import (
	"context"
	"time"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
	"ducochat-be/internal/repository/unitofwork"
	"ducochat-be/pkg/events"
)

// IEventPublisher pushes domain events to the dashboard bus.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type ITutorialService interface {
	GetAll(ctx context.Context) ([]*dto.TutorialStatusResponse, error)
	Show(ctx context.Context, id uint) (*dto.TutorialStatusResponse, error)
	ShowByRut(ctx context.Context, rut string) (*dto.TutorialStatusResponse, error)
	Create(ctx context.Context, req *dto.CreateTutorialStatusRequest) (*dto.TutorialStatusResponse, error)
	Update(ctx context.Context, req *dto.UpdateTutorialStatusRequest) (*dto.TutorialStatusResponse, error)
	Delete(ctx context.Context, id uint) (*dto.DeleteTutorialStatusResponse, error)
	Completed(ctx context.Context, req *dto.TutorialCompletedRequest) (*dto.TutorialCompletedResponse, error)
	UsersPerDay(ctx context.Context, days int, from, to string) ([]*dto.UsersPerDayItem, error)
}

type tutorialService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IEventPublisher
}

func NewTutorialService(uowFactory unitofwork.RepositoryFactory, eventPublisher IEventPublisher) ITutorialService {
	return &tutorialService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toTutorialStatusResponse(t *entity.TutorialStatus) *dto.TutorialStatusResponse {
	if t == nil {
		return nil
	}
	return &dto.TutorialStatusResponse{
		Id:   t.Id,
		Rut:  t.Rut,
		Seen: t.Seen,
		Date: t.Date,
	}
}

func (s *tutorialService) GetAll(ctx context.Context) ([]*dto.TutorialStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	statuses, err := uow.TutorialStatusRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TutorialStatusResponse, 0, len(statuses))
	for _, t := range statuses {
		result = append(result, toTutorialStatusResponse(t))
	}
	return result, nil
}

func (s *tutorialService) Show(ctx context.Context, id uint) (*dto.TutorialStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status, err := uow.TutorialStatusRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return toTutorialStatusResponse(status), nil
}

func (s *tutorialService) ShowByRut(ctx context.Context, rut string) (*dto.TutorialStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status, err := uow.TutorialStatusRepository().FindOne(ctx, specification.ByRut{Rut: rut})
	if err != nil {
		return nil, err
	}
	return toTutorialStatusResponse(status), nil
}

func (s *tutorialService) Create(ctx context.Context, req *dto.CreateTutorialStatusRequest) (*dto.TutorialStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.TutorialStatus{
		Rut:  req.Rut,
		Seen: *req.Seen,
		Date: time.Now(),
	}
	if err := uow.TutorialStatusRepository().Create(ctx, &status); err != nil {
		return nil, err
	}
	return toTutorialStatusResponse(&status), nil
}

func (s *tutorialService) Update(ctx context.Context, req *dto.UpdateTutorialStatusRequest) (*dto.TutorialStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status, err := uow.TutorialStatusRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}

	status.Rut = req.Rut
	status.Seen = *req.Seen
	if err := uow.TutorialStatusRepository().Update(ctx, status); err != nil {
		return nil, err
	}
	return toTutorialStatusResponse(status), nil
}

func (s *tutorialService) Delete(ctx context.Context, id uint) (*dto.DeleteTutorialStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status, err := uow.TutorialStatusRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, nil
	}

	if err := uow.TutorialStatusRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeleteTutorialStatusResponse{
		Message: "Estado de tutorial eliminado",
		Deleted: toTutorialStatusResponse(status),
	}, nil
}

// Completed marks the onboarding tutorial as done for a student. The
// first call per RUT inserts a row and emits the new-user event; repeat
// calls are acknowledged without side effects.
func (s *tutorialService) Completed(ctx context.Context, req *dto.TutorialCompletedRequest) (*dto.TutorialCompletedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.TutorialStatusRepository().FindOne(ctx, specification.ByRut{Rut: req.Rut})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.TutorialCompletedResponse{
			Mensaje: "Usuario ya vio el tutorial",
			Data:    toTutorialStatusResponse(existing),
		}, nil
	}

	status := entity.TutorialStatus{
		Rut:  req.Rut,
		Seen: true,
		Date: time.Now(),
	}
	if err := uow.TutorialStatusRepository().Create(ctx, &status); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewUserRegistered(req.Rut)); err != nil {
			// The signup is already stored; the dashboard just misses one tick.
			return &dto.TutorialCompletedResponse{
				Mensaje: "Usuario contado como nuevo",
				Data:    toTutorialStatusResponse(&status),
			}, nil
		}
	}

	return &dto.TutorialCompletedResponse{
		Mensaje: "Usuario contado como nuevo",
		Data:    toTutorialStatusResponse(&status),
	}, nil
}

// UsersPerDay aggregates tutorial completions per calendar day. Either a
// lookback window (days) or an explicit from/to range (YYYY-MM-DD) can be
// given; days without completions appear with a zero count.
func (s *tutorialService) UsersPerDay(ctx context.Context, days int, from, to string) ([]*dto.UsersPerDayItem, error) {
	var startDate, endDate time.Time
	now := time.Now()

	if from != "" || to != "" {
		if from != "" {
			parsed, err := time.Parse("2006-01-02", from)
			if err != nil {
				return nil, err
			}
			startDate = parsed
		} else {
			startDate = now.AddDate(0, 0, -30)
		}
		if to != "" {
			parsed, err := time.Parse("2006-01-02", to)
			if err != nil {
				return nil, err
			}
			// Include the whole "to" day.
			endDate = parsed.Add(24*time.Hour - time.Nanosecond)
		} else {
			endDate = now
		}
	} else {
		lookback := days
		if lookback <= 0 {
			lookback = 30
		}
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		startDate = midnight.AddDate(0, 0, -(lookback - 1))
		endDate = now
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	statuses, err := uow.TutorialStatusRepository().FindAll(ctx,
		specification.DateBetween{Field: "date", From: startDate, To: endDate},
		specification.OrderBy{Field: "date"},
	)
	if err != nil {
		return nil, err
	}

	countsByDay := make(map[string]int)
	for _, st := range statuses {
		countsByDay[st.Date.Format("2006-01-02")]++
	}

	result := make([]*dto.UsersPerDayItem, 0)
	cursor := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())
	for !cursor.After(end) {
		key := cursor.Format("2006-01-02")
		result = append(result, &dto.UsersPerDayItem{
			Date:  key,
			Count: countsByDay[key],
		})
		cursor = cursor.AddDate(0, 0, 1)
	}
	return result, nil
}
