package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	reservationStorage "github.com/campusbook/CB-ReservationService/internal/infra/storage/reservation"
	"github.com/campusbook/CB-ReservationService/pkg/ptr"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	existing   *domain.Reservation
	getErr     error
	listResult []*domain.Reservation
	updated    *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
}

func (f *fakeReservationRepo) List(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.listResult, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	stored := *res
	stored.UpdatedAt = time.Now()
	f.updated = &stored
	return &stored, nil
}

type fakeSpaceRepo struct {
	space *domain.Space
	err   error
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.Space, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.space, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:          42,
		SpaceID:     1,
		RequesterID: 10,
		Title:       "Репетиция хора",
		Date:        time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("14:00"),
		EndTime:     types.TimeString("16:00"),
		Status:      domain.StatusPending,
	}
}

func bookableSpace() *domain.Space {
	return &domain.Space{
		ID:       1,
		Name:     "Актовый зал",
		Capacity: 200,
		Type:     domain.SpaceEventHall,
		Active:   true,
	}
}

func newTestUseCase(resRepo *fakeReservationRepo, spRepo *fakeSpaceRepo) *UseCase {
	uc := NewUseCase(resRepo, spRepo, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_OwnerEditsTime(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: pendingReservation()}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		ActorID:       10,
		ActorRole:     domain.RoleTeacher,
		StartTime:     ptr.Ptr(types.TimeString("15:00")),
		EndTime:       ptr.Ptr(types.TimeString("17:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("15:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("17:00"), resp.EndTime)
	// Нетронутые поля сохраняются
	assert.Equal(t, "Репетиция хора", resp.Title)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_StrangerDenied(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: pendingReservation()}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		ActorID:       999,
		ActorRole:     domain.RoleTeacher,
		Title:         ptr.Ptr("Чужая заявка"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resRepo.updated)
}

func TestExecute_AdminEditsForeignReservation(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: pendingReservation()}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		ActorID:       999,
		ActorRole:     domain.RoleAdmin,
		Title:         ptr.Ptr("Скорректировано администратором"),
	})
	assert.NoError(t, err)
}

func TestExecute_OnlyPendingEditable(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusConfirmed, domain.StatusRejected, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			existing := pendingReservation()
			existing.Status = status
			resRepo := &fakeReservationRepo{existing: existing}
			uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

			_, err := uc.Execute(context.Background(), &Request{
				ReservationID: 42,
				ActorID:       10,
				ActorRole:     domain.RoleTeacher,
				Title:         ptr.Ptr("Новое название"),
			})
			assert.ErrorIs(t, err, ErrNotEditable)
		})
	}
}

func TestExecute_ConflictExcludesSelf(t *testing.T) {
	// Собственная бронь в выборке не считается конфликтом
	existing := pendingReservation()
	resRepo := &fakeReservationRepo{
		existing:   existing,
		listResult: []*domain.Reservation{existing},
	}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		ActorID:       10,
		ActorRole:     domain.RoleTeacher,
		StartTime:     ptr.Ptr(types.TimeString("14:30")),
		EndTime:       ptr.Ptr(types.TimeString("16:30")),
	})
	assert.NoError(t, err)
}

func TestExecute_ConflictWithForeignReservation(t *testing.T) {
	existing := pendingReservation()
	resRepo := &fakeReservationRepo{
		existing: existing,
		listResult: []*domain.Reservation{
			existing,
			{
				ID:        77,
				SpaceID:   1,
				StartTime: types.TimeString("16:00"),
				EndTime:   types.TimeString("18:00"),
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		ActorID:       10,
		ActorRole:     domain.RoleTeacher,
		EndTime:       ptr.Ptr(types.TimeString("16:30")),
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, resRepo.updated)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	resRepo := &fakeReservationRepo{getErr: reservationStorage.ErrReservationNotFound}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 404,
		ActorID:       10,
		ActorRole:     domain.RoleTeacher,
		Title:         ptr.Ptr("x"),
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_NoFieldsToUpdate(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: pendingReservation()}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		ActorID:       10,
		ActorRole:     domain.RoleTeacher,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MergedCapacityChecked(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: pendingReservation()}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: bookableSpace()})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 42,
		ActorID:       10,
		ActorRole:     domain.RoleTeacher,
		Participants:  ptr.Ptr(201),
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}
