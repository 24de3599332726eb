package service

import (
	"context"
	"testing"
	"time"

	"ducochat-be/internal/dto"
	"ducochat-be/internal/entity"
	"ducochat-be/internal/repository/contract"
	"ducochat-be/internal/repository/specification"
	"ducochat-be/internal/repository/unitofwork"
	"ducochat-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

// fakeTutorialRepo keeps rows in memory and interprets the handful of
// specifications the tutorial service actually uses.
type fakeTutorialRepo struct {
	rows   []*entity.TutorialStatus
	nextId uint
}

func (r *fakeTutorialRepo) Create(ctx context.Context, status *entity.TutorialStatus) error {
	r.nextId++
	status.Id = r.nextId
	clone := *status
	r.rows = append(r.rows, &clone)
	return nil
}

func (r *fakeTutorialRepo) Update(ctx context.Context, status *entity.TutorialStatus) error {
	for i, row := range r.rows {
		if row.Id == status.Id {
			clone := *status
			r.rows[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeTutorialRepo) Delete(ctx context.Context, id uint) error {
	for i, row := range r.rows {
		if row.Id == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeTutorialRepo) matches(row *entity.TutorialStatus, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if row.Id != s.ID {
				return false
			}
		case specification.ByRut:
			if row.Rut != s.Rut {
				return false
			}
		case specification.DateBetween:
			if row.Date.Before(s.From) || row.Date.After(s.To) {
				return false
			}
		}
	}
	return true
}

func (r *fakeTutorialRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TutorialStatus, error) {
	for _, row := range r.rows {
		if r.matches(row, specs) {
			clone := *row
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeTutorialRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorialStatus, error) {
	var out []*entity.TutorialStatus
	for _, row := range r.rows {
		if r.matches(row, specs) {
			clone := *row
			out = append(out, &clone)
		}
	}
	return out, nil
}

// fakeUow hands out whichever fake repositories a test wires in.
type fakeUow struct {
	tutorialRepo *fakeTutorialRepo
	ratingRepo   contract.RatingRepository
	endUserRepo  contract.EndUserRepository
	modalityRepo contract.ModalityRepository
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) CategoryRepository() contract.CategoryRepository             { return nil }
func (u *fakeUow) QuestionRepository() contract.QuestionRepository             { return nil }
func (u *fakeUow) EndUserRepository() contract.EndUserRepository               { return u.endUserRepo }
func (u *fakeUow) ModalityRepository() contract.ModalityRepository             { return u.modalityRepo }
func (u *fakeUow) RatingRepository() contract.RatingRepository                 { return u.ratingRepo }
func (u *fakeUow) AdminUserRepository() contract.AdminUserRepository           { return nil }
func (u *fakeUow) MessageLogRepository() contract.MessageLogRepository         { return nil }
func (u *fakeUow) TutorialStatusRepository() contract.TutorialStatusRepository { return u.tutorialRepo }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

func newTutorialFixture() (ITutorialService, *fakeTutorialRepo, *recordingPublisher) {
	repo := &fakeTutorialRepo{}
	factory := &fakeUowFactory{uow: &fakeUow{tutorialRepo: repo}}
	pub := &recordingPublisher{}
	return NewTutorialService(factory, pub), repo, pub
}

func TestCompletedCountsFirstTimeUser(t *testing.T) {
	svc, repo, pub := newTutorialFixture()

	res, err := svc.Completed(context.Background(), &dto.TutorialCompletedRequest{Rut: "11111111-1"})

	assert.NoError(t, err)
	assert.Equal(t, "Usuario contado como nuevo", res.Mensaje)
	assert.Len(t, repo.rows, 1)
	assert.True(t, repo.rows[0].Seen)

	if assert.Len(t, pub.published, 1) {
		assert.Equal(t, events.TypeNewUser, pub.published[0].EventType())
	}
}

func TestCompletedIsIdempotent(t *testing.T) {
	svc, repo, pub := newTutorialFixture()

	_, err := svc.Completed(context.Background(), &dto.TutorialCompletedRequest{Rut: "11111111-1"})
	assert.NoError(t, err)

	res, err := svc.Completed(context.Background(), &dto.TutorialCompletedRequest{Rut: "11111111-1"})
	assert.NoError(t, err)
	assert.Equal(t, "Usuario ya vio el tutorial", res.Mensaje)
	assert.Len(t, repo.rows, 1)
	assert.Len(t, pub.published, 1)
}

func TestUsersPerDayZeroFillsRange(t *testing.T) {
	svc, repo, _ := newTutorialFixture()

	day := func(s string) time.Time {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad test date %q: %v", s, err)
		}
		return parsed.Add(10 * time.Hour)
	}
	repo.rows = []*entity.TutorialStatus{
		{Id: 1, Rut: "1-9", Seen: true, Date: day("2026-08-01")},
		{Id: 2, Rut: "2-7", Seen: true, Date: day("2026-08-01")},
		{Id: 3, Rut: "3-5", Seen: true, Date: day("2026-08-03")},
	}

	res, err := svc.UsersPerDay(context.Background(), 0, "2026-08-01", "2026-08-04")

	assert.NoError(t, err)
	if assert.Len(t, res, 4) {
		assert.Equal(t, &dto.UsersPerDayItem{Date: "2026-08-01", Count: 2}, res[0])
		assert.Equal(t, &dto.UsersPerDayItem{Date: "2026-08-02", Count: 0}, res[1])
		assert.Equal(t, &dto.UsersPerDayItem{Date: "2026-08-03", Count: 1}, res[2])
		assert.Equal(t, &dto.UsersPerDayItem{Date: "2026-08-04", Count: 0}, res[3])
	}
}

func TestUsersPerDayRejectsBadDates(t *testing.T) {
	svc, _, _ := newTutorialFixture()

	_, err := svc.UsersPerDay(context.Background(), 0, "01-08-2026", "")
	assert.Error(t, err)
}

func TestUsersPerDayDefaultsToThirtyDays(t *testing.T) {
	svc, _, _ := newTutorialFixture()

	res, err := svc.UsersPerDay(context.Background(), 0, "", "")

	assert.NoError(t, err)
	assert.Len(t, res, 30)
	assert.Equal(t, time.Now().Format("2006-01-02"), res[len(res)-1].Date)
}
