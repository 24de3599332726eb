package service

import (
	"context"
	"testing"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/specification"
	"ducochat-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

type fakeRatingRepo struct {
	rows   []*entity.Rating
	nextId uint
}

func (r *fakeRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	r.nextId++
	rating.Id = r.nextId
	clone := *rating
	r.rows = append(r.rows, &clone)
	return nil
}

func (r *fakeRatingRepo) Update(ctx context.Context, rating *entity.Rating) error {
	for i, row := range r.rows {
		if row.Id == rating.Id {
			clone := *rating
			r.rows[i] = &clone
		}
	}
	return nil
}

func (r *fakeRatingRepo) Delete(ctx context.Context, id uint) error {
	for i, row := range r.rows {
		if row.Id == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeRatingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Rating, error) {
	for _, row := range r.rows {
		if matchesRatingSpecs(row, specs) {
			clone := *row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRatingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rating, error) {
	var out []*entity.Rating
	for _, row := range r.rows {
		if matchesRatingSpecs(row, specs) {
			clone := *row
			out = append(out, &clone)
		}
	}
	return out, nil
}

func matchesRatingSpecs(row *entity.Rating, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok && row.Id != s.ID {
			return false
		}
	}
	return true
}

type fakeEndUserRepo struct {
	rows []*entity.EndUser
}

func (r *fakeEndUserRepo) Create(ctx context.Context, user *entity.EndUser) error { return nil }
func (r *fakeEndUserRepo) Update(ctx context.Context, user *entity.EndUser) error { return nil }
func (r *fakeEndUserRepo) Delete(ctx context.Context, rut string) error           { return nil }

func (r *fakeEndUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EndUser, error) {
	for _, spec := range specs {
		if s, ok := spec.(specification.ByRut); ok {
			for _, row := range r.rows {
				if row.Rut == s.Rut {
					clone := *row
					return &clone, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeEndUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EndUser, error) {
	return r.rows, nil
}

type fakeModalityRepo struct {
	rows []*entity.Modality
}

func (r *fakeModalityRepo) Create(ctx context.Context, modality *entity.Modality) error { return nil }
func (r *fakeModalityRepo) Update(ctx context.Context, modality *entity.Modality) error { return nil }
func (r *fakeModalityRepo) Delete(ctx context.Context, id uint) error                   { return nil }

func (r *fakeModalityRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Modality, error) {
	for _, spec := range specs {
		if s, ok := spec.(specification.FilterBy); ok && s.Field == "id_modality" {
			for _, row := range r.rows {
				if value, ok := s.Value.(uint); ok && row.Id == value {
					clone := *row
					return &clone, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeModalityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Modality, error) {
	return r.rows, nil
}

func newRatingFixture() (IRatingService, *fakeRatingRepo, *fakeEndUserRepo, *fakeModalityRepo, *recordingPublisher) {
	ratingRepo := &fakeRatingRepo{}
	userRepo := &fakeEndUserRepo{}
	modalityRepo := &fakeModalityRepo{}
	factory := &fakeUowFactory{uow: &fakeUow{
		ratingRepo:   ratingRepo,
		endUserRepo:  userRepo,
		modalityRepo: modalityRepo,
	}}
	pub := &recordingPublisher{}
	return NewRatingService(factory, pub), ratingRepo, userRepo, modalityRepo, pub
}

func TestCreateRatingPublishesEnrichedEvent(t *testing.T) {
	svc, repo, userRepo, modalityRepo, pub := newRatingFixture()

	userRepo.rows = []*entity.EndUser{{
		Rut:                "12345678-5",
		FirstName:          "Ana",
		LastName:           "Rojas",
		InstitutionalEmail: "ana.rojas@duco.cl",
		ModalityId:         2,
	}}
	modalityRepo.rows = []*entity.Modality{{Id: 2, Type: "Vespertina"}}

	res, err := svc.Create(context.Background(), &dto.CreateRatingRequest{Rut: "12345678-5", Score: 5})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), res.Id)
	assert.Equal(t, 5, res.Score)
	assert.Len(t, repo.rows, 1)

	if assert.Len(t, pub.published, 1) {
		assert.Equal(t, events.TypeRatingCreated, pub.published[0].EventType())
		payload := pub.published[0].Payload()
		assert.Equal(t, "Ana Rojas", payload["nombre"])
		assert.Equal(t, "ana.rojas@duco.cl", payload["correo"])
		assert.Equal(t, "Vespertina", payload["modalidad"])
	}
}

func TestGetAllFallsBackForUnknownAuthor(t *testing.T) {
	svc, repo, _, _, _ := newRatingFixture()

	repo.rows = []*entity.Rating{{Id: 1, Rut: "99999999-9", Score: 3}}

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, res, 1) {
		assert.Equal(t, "Estudiante sin nombre", res[0].Nombre)
		assert.Equal(t, "Sin correo", res[0].Correo)
		assert.Equal(t, "Sin RUT", res[0].RutUsuario)
		assert.Equal(t, "Sin modalidad", res[0].Modalidad)
	}
}

func TestDeleteRatingReturnsNilWhenMissing(t *testing.T) {
	svc, _, _, _, _ := newRatingFixture()

	res, err := svc.Delete(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, res)
}
