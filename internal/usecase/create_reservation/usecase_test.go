package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	spaceStorage "github.com/campusbook/CB-ReservationService/internal/infra/storage/space"
	"github.com/campusbook/CB-ReservationService/pkg/ptr"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	listResult []*domain.Reservation
	created    *domain.Reservation
	nextID     int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	stored := *res
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeReservationRepo) List(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.listResult, nil
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

func activeSpace() *domain.Space {
	return &domain.Space{
		ID:       1,
		Name:     "Большая аудитория",
		Capacity: 50,
		Type:     domain.SpaceAuditorium,
		Active:   true,
	}
}

func validRequest() *Request {
	return &Request{
		SpaceID:       1,
		RequesterID:   10,
		RequesterRole: domain.RoleTeacher,
		Title:         "Лекция по физике",
		Date:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		EndTime:       types.TimeString("11:30"),
	}
}

func newTestUseCase(resRepo *fakeReservationRepo, spRepo *fakeSpaceRepo, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(resRepo, spRepo, notifier, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_TeacherCreatesPending(t *testing.T) {
	resRepo := &fakeReservationRepo{nextID: 100}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: activeSpace()}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	require.Len(t, notifier.emitted, 1)
	assert.Equal(t, int64(10), notifier.emitted[0].recipientID)
	assert.Equal(t, domain.NotificationInfo, notifier.emitted[0].nType)
}

func TestExecute_AdminSkipsApproval(t *testing.T) {
	resRepo := &fakeReservationRepo{nextID: 101}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: activeSpace()}, notifier)

	req := validRequest()
	req.RequesterRole = domain.RoleAdmin

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	require.Len(t, notifier.emitted, 1)
	assert.Equal(t, domain.NotificationSuccess, notifier.emitted[0].nType)
}

func TestExecute_SlotConflict(t *testing.T) {
	resRepo := &fakeReservationRepo{
		nextID: 102,
		listResult: []*domain.Reservation{
			{
				ID:        55,
				SpaceID:   1,
				StartTime: types.TimeString("10:30"),
				EndTime:   types.TimeString("12:00"),
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, resRepo.created)
}

func TestExecute_PendingReservationBlocksSlot(t *testing.T) {
	// Ожидающая заявка удерживает слот наравне с подтвержденной
	resRepo := &fakeReservationRepo{
		nextID: 103,
		listResult: []*domain.Reservation{
			{
				ID:        56,
				SpaceID:   1,
				StartTime: types.TimeString("10:00"),
				EndTime:   types.TimeString("11:00"),
				Status:    domain.StatusPending,
			},
		},
	}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_TerminalReservationFreesSlot(t *testing.T) {
	// Отклоненные и отмененные брони слот не удерживают
	resRepo := &fakeReservationRepo{
		nextID: 104,
		listResult: []*domain.Reservation{
			{ID: 57, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00"), Status: domain.StatusRejected},
			{ID: 58, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00"), Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_TouchingSlotsDoNotConflict(t *testing.T) {
	// Интервалы полуоткрытые: бронь до 10:00 не мешает брони с 10:00
	resRepo := &fakeReservationRepo{
		nextID: 105,
		listResult: []*domain.Reservation{
			{ID: 59, StartTime: types.TimeString("08:00"), EndTime: types.TimeString("10:00"), Status: domain.StatusConfirmed},
			{ID: 60, StartTime: types.TimeString("11:30"), EndTime: types.TimeString("13:00"), Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{err: spaceStorage.ErrSpaceNotFound}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_DeletedSpaceNotFound(t *testing.T) {
	space := activeSpace()
	space.Deleted = true
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: space}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_InactiveSpace(t *testing.T) {
	space := activeSpace()
	space.Active = false
	space.DeactivationReason = ptr.Ptr("ремонт")
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: space}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSpaceInactive)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_StartTimeInPastToday(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	// Сегодняшний день (now = 2026-09-01 12:00), слот начинается в 10:00
	req := validRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStartTimeInPast)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	req := validRequest()
	req.Participants = ptr.Ptr(51)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"end before start", "11:00", "10:00"},
		{"zero length", "10:00", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = types.TimeString(tt.start)
			req.EndTime = types.TimeString(tt.end)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ShortSlotAllowed(t *testing.T) {
	// Любой положительный интервал валиден, минимальной длительности нет
	resRepo := &fakeReservationRepo{nextID: 106}
	uc := newTestUseCase(resRepo, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	req := validRequest()
	req.StartTime = types.TimeString("09:00")
	req.EndTime = types.TimeString("09:10")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(106), resp.ID)
}

func TestExecute_EmptyTitle(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{space: activeSpace()}, &fakeNotifier{})

	req := validRequest()
	req.Title = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
