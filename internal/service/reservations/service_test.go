package reservations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	reservationStorage "github.com/campusbook/CB-ReservationService/internal/infra/storage/reservation"
	"github.com/campusbook/CB-ReservationService/internal/service/reservations/models"
	"github.com/campusbook/CB-ReservationService/pkg/ptr"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error

	listFilter domain.ReservationFilter
	listResult []*domain.Reservation

	updatedFrom     *domain.ReservationStatus
	updatedStatus   *domain.ReservationStatus
	updatedReason   *string
	updateStatusErr error

	deletedID int64
}

func (f *fakeReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.reservation, nil
}

func (f *fakeReservationRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.listFilter = filter
	return f.listResult, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, from, to domain.ReservationStatus, reason *string) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.updatedFrom = &from
	f.updatedStatus = &to
	f.updatedReason = reason
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

type fakeSpaceRepo struct{}

func (f *fakeSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.Space, error) {
	return &domain.Space{ID: 1, Active: true}, nil
}

type emittedNotification struct {
	recipientID int64
	title       string
	message     string
	nType       domain.NotificationType
}

type fakeNotifier struct {
	emitted []emittedNotification
}

func (f *fakeNotifier) Emit(_ context.Context, recipientID int64, title, message string, nType domain.NotificationType) error {
	f.emitted = append(f.emitted, emittedNotification{recipientID, title, message, nType})
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleReservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:          7,
		SpaceID:     1,
		RequesterID: 10,
		Title:       "Родительское собрание",
		Date:        time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("18:00"),
		EndTime:     types.TimeString("19:30"),
		Status:      status,
	}
}

func newTestService(repo *fakeReservationRepo, notifier *fakeNotifier) *Service {
	return NewService(repo, &fakeSpaceRepo{}, notifier, nopLogger{})
}

func TestGetByID_OwnerAndAdminAllowed(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.GetByID(context.Background(), 7, 10, domain.RoleTeacher)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 7, 999, domain.RoleAdmin)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 7, 999, domain.RoleTeacher)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_TeacherScopedToOwnReservations(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.List(context.Background(), &models.ListRequest{
		ActorID:   10,
		ActorRole: domain.RoleTeacher,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.listFilter.RequesterID)
	assert.Equal(t, int64(10), *repo.listFilter.RequesterID)
}

func TestList_AdminSeesAll(t *testing.T) {
	repo := &fakeReservationRepo{}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.List(context.Background(), &models.ListRequest{
		ActorID:   1,
		ActorRole: domain.RoleAdmin,
	})
	require.NoError(t, err)

	assert.Nil(t, repo.listFilter.RequesterID)
}

func TestList_InvalidStatusRejected(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{}, &fakeNotifier{})

	_, err := svc.List(context.Background(), &models.ListRequest{
		ActorID:   1,
		ActorRole: domain.RoleAdmin,
		Status:    ptr.Ptr("approved"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransition_AdminConfirms(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	resp, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:   1,
		ActorRole: domain.RoleAdmin,
		NewStatus: "confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	// Перевод выполняется строго из прочитанного статуса
	require.NotNil(t, repo.updatedFrom)
	assert.Equal(t, domain.StatusPending, *repo.updatedFrom)
	require.Len(t, notifier.emitted, 1)
	assert.Equal(t, int64(10), notifier.emitted[0].recipientID)
	assert.Equal(t, domain.NotificationSuccess, notifier.emitted[0].nType)
}

func TestTransition_ConcurrentTransitionLoses(t *testing.T) {
	// Конкурентный переход успел первым: статус в базе уже не pending
	repo := &fakeReservationRepo{
		reservation:     sampleReservation(domain.StatusPending),
		updateStatusErr: reservationStorage.ErrStatusConflict,
	}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	_, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:   1,
		ActorRole: domain.RoleAdmin,
		NewStatus: "confirmed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, notifier.emitted)
}

func TestTransition_TeacherMayNotConfirmOrReject(t *testing.T) {
	for _, target := range []string{"confirmed", "rejected"} {
		t.Run(target, func(t *testing.T) {
			repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
			svc := newTestService(repo, &fakeNotifier{})

			_, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
				ActorID:         10,
				ActorRole:       domain.RoleTeacher,
				NewStatus:       target,
				RejectionReason: ptr.Ptr("причина"),
			})
			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

func TestTransition_RejectRequiresReason(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:   1,
		ActorRole: domain.RoleAdmin,
		NewStatus: "rejected",
	})
	assert.ErrorIs(t, err, ErrReasonRequired)

	_, err = svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:         1,
		ActorRole:       domain.RoleAdmin,
		NewStatus:       "rejected",
		RejectionReason: ptr.Ptr(""),
	})
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestTransition_RejectionReasonStoredVerbatim(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	reason := "  Зал занят под ГИА; обратитесь к завучу.  "
	resp, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:         1,
		ActorRole:       domain.RoleAdmin,
		NewStatus:       "rejected",
		RejectionReason: ptr.Ptr(reason),
	})
	require.NoError(t, err)

	// Причина сохраняется дословно, без нормализации
	require.NotNil(t, repo.updatedReason)
	assert.Equal(t, reason, *repo.updatedReason)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, reason, *resp.RejectionReason)

	require.Len(t, notifier.emitted, 1)
	assert.Equal(t, domain.NotificationError, notifier.emitted[0].nType)
	assert.True(t, strings.Contains(notifier.emitted[0].message, reason))
}

func TestTransition_RejectionReasonTooLong(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
	svc := newTestService(repo, &fakeNotifier{})

	long := strings.Repeat("п", domain.MaxRejectionReasonLength+1)
	_, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:         1,
		ActorRole:       domain.RoleAdmin,
		NewStatus:       "rejected",
		RejectionReason: ptr.Ptr(long),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransition_OwnerCancelsConfirmed(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusConfirmed)}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	resp, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:   10,
		ActorRole: domain.RoleTeacher,
		NewStatus: "cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	require.Len(t, notifier.emitted, 1)
	assert.Equal(t, domain.NotificationInfo, notifier.emitted[0].nType)
}

func TestTransition_AdminCancelsForeign(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusConfirmed)}
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	_, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:   1,
		ActorRole: domain.RoleAdmin,
		NewStatus: "cancelled",
	})
	require.NoError(t, err)

	// Отмена чужой брони администратором — предупреждение владельцу
	require.Len(t, notifier.emitted, 1)
	assert.Equal(t, domain.NotificationWarning, notifier.emitted[0].nType)
}

func TestTransition_StrangerMayNotCancel(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:   999,
		ActorRole: domain.RoleTeacher,
		NewStatus: "cancelled",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestTransition_TerminalStatusesAbsorbing(t *testing.T) {
	for _, from := range []domain.ReservationStatus{domain.StatusRejected, domain.StatusCancelled} {
		for _, target := range []string{"confirmed", "rejected", "cancelled"} {
			t.Run(string(from)+"->"+target, func(t *testing.T) {
				repo := &fakeReservationRepo{reservation: sampleReservation(from)}
				svc := newTestService(repo, &fakeNotifier{})

				_, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
					ActorID:         1,
					ActorRole:       domain.RoleAdmin,
					NewStatus:       target,
					RejectionReason: ptr.Ptr("причина"),
				})
				assert.ErrorIs(t, err, ErrInvalidTransition)
			})
		}
	}
}

func TestTransition_PendingIsNotATarget(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusConfirmed)}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.Transition(context.Background(), 7, &models.TransitionRequest{
		ActorID:   1,
		ActorRole: domain.RoleAdmin,
		NewStatus: "pending",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{getErr: reservationStorage.ErrReservationNotFound}
	svc := newTestService(repo, &fakeNotifier{})

	_, err := svc.Transition(context.Background(), 404, &models.TransitionRequest{
		ActorID:   1,
		ActorRole: domain.RoleAdmin,
		NewStatus: "confirmed",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete_OwnerDeletesPendingOnly(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
	svc := newTestService(repo, &fakeNotifier{})

	err := svc.Delete(context.Background(), 7, &models.DeleteRequest{
		ActorID:   10,
		ActorRole: domain.RoleTeacher,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.deletedID)
}

func TestDelete_OwnerMayNotDeleteConfirmed(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusConfirmed)}
	svc := newTestService(repo, &fakeNotifier{})

	err := svc.Delete(context.Background(), 7, &models.DeleteRequest{
		ActorID:   10,
		ActorRole: domain.RoleTeacher,
	})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDelete_AdminDeletesAnyStatus(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusPending, domain.StatusConfirmed, domain.StatusRejected, domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeReservationRepo{reservation: sampleReservation(status)}
			svc := newTestService(repo, &fakeNotifier{})

			err := svc.Delete(context.Background(), 7, &models.DeleteRequest{
				ActorID:   1,
				ActorRole: domain.RoleAdmin,
			})
			assert.NoError(t, err)
		})
	}
}

func TestDelete_StrangerDenied(t *testing.T) {
	repo := &fakeReservationRepo{reservation: sampleReservation(domain.StatusPending)}
	svc := newTestService(repo, &fakeNotifier{})

	err := svc.Delete(context.Background(), 7, &models.DeleteRequest{
		ActorID:   999,
		ActorRole: domain.RoleTeacher,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
