package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/internal/service/reports/models"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

type fakeReservationRepo struct {
	listFilter domain.ReservationFilter
	listResult []*domain.Reservation
}

func (f *fakeReservationRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.listFilter = filter
	return f.listResult, nil
}

type fakeSpaceRepo struct {
	spaces []*domain.Space
}

func (f *fakeSpaceRepo) List(_ context.Context) ([]*domain.Space, error) {
	return f.spaces, nil
}

type fakeUserRepo struct {
	users []*domain.User
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	return f.users, nil
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

// Рабочее окно 07:00–22:00
const testOperatingMinutes = 900

func reservation(id int64, spaceID, requesterID int64, date time.Time, start, end string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:          id,
		SpaceID:     spaceID,
		RequesterID: requesterID,
		Date:        date,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
		Status:      status,
	}
}

func newTestService(resRepo *fakeReservationRepo, spaces []*domain.Space, users []*domain.User, now time.Time) *Service {
	svc := NewService(resRepo, &fakeSpaceRepo{spaces: spaces}, &fakeUserRepo{users: users}, testOperatingMinutes, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}
	return svc
}

func TestStatistics_EmptyDatasetIsAllZeros(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{}, nil, nil, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))

	resp, err := svc.Statistics(context.Background(), models.PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.StatusCounts.Total)
	// На пустом множестве проценты равны нулю, а не NaN
	assert.Equal(t, 0.0, resp.ApprovalPercent)
	assert.Empty(t, resp.Spaces)
	assert.Empty(t, resp.Users)
}

func TestStatistics_CountsAndApproval(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	resRepo := &fakeReservationRepo{
		listResult: []*domain.Reservation{
			reservation(1, 1, 10, day, "09:00", "10:00", domain.StatusConfirmed),
			reservation(2, 1, 10, day, "10:00", "11:00", domain.StatusConfirmed),
			reservation(3, 1, 11, day, "11:00", "12:00", domain.StatusRejected),
			reservation(4, 1, 11, day, "12:00", "13:00", domain.StatusPending),
			reservation(5, 1, 11, day, "13:00", "14:00", domain.StatusCancelled),
		},
	}
	svc := newTestService(resRepo, nil, nil, day)

	resp, err := svc.Statistics(context.Background(), models.PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.StatusCounts.Confirmed)
	assert.Equal(t, 1, resp.StatusCounts.Rejected)
	assert.Equal(t, 1, resp.StatusCounts.Pending)
	assert.Equal(t, 1, resp.StatusCounts.Cancelled)
	assert.Equal(t, 5, resp.StatusCounts.Total)

	// Доля одобрений: 2 confirmed из 3 рассмотренных (pending и cancelled не в счёт)
	assert.InDelta(t, 66.67, resp.ApprovalPercent, 0.01)
}

func TestStatistics_TerminalReservationsIncluded(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	svc := newTestService(resRepo, nil, nil, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))

	_, err := svc.Statistics(context.Background(), models.PeriodAll)
	require.NoError(t, err)

	// Отчет охватывает и отклоненные/отмененные брони
	assert.True(t, resRepo.listFilter.IncludeTerminal)
	assert.Nil(t, resRepo.listFilter.StartDate)
}

func TestStatistics_CurrentMonthBounds(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	now := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	svc := newTestService(resRepo, nil, nil, now)

	_, err := svc.Statistics(context.Background(), models.PeriodCurrentMonth)
	require.NoError(t, err)

	require.NotNil(t, resRepo.listFilter.StartDate)
	require.NotNil(t, resRepo.listFilter.EndDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *resRepo.listFilter.StartDate)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), *resRepo.listFilter.EndDate)
}

func TestStatistics_SpaceOccupancy(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	spaces := []*domain.Space{
		{ID: 1, Name: "Большая аудитория"},
		{ID: 2, Name: "Часовня"},
	}
	resRepo := &fakeReservationRepo{
		listResult: []*domain.Reservation{
			// 90 + 90 минут удерживают слот
			reservation(1, 1, 10, day, "09:00", "10:30", domain.StatusConfirmed),
			reservation(2, 1, 10, day, "11:00", "12:30", domain.StatusPending),
			// Отклоненная бронь считается в count, но не в занятость
			reservation(3, 1, 11, day, "13:00", "14:00", domain.StatusRejected),
		},
	}
	svc := newTestService(resRepo, spaces, nil, day)

	resp, err := svc.Statistics(context.Background(), models.PeriodAll)
	require.NoError(t, err)
	require.Len(t, resp.Spaces, 2)

	hall := resp.Spaces[0]
	assert.Equal(t, int64(1), hall.SpaceID)
	assert.Equal(t, 3, hall.ReservationCount)
	assert.InDelta(t, 3.0, hall.OccupiedHours, 0.001)
	// Один день периода: 180 занятых минут из 900 рабочих
	assert.InDelta(t, 20.0, hall.OccupancyPercent, 0.01)

	chapel := resp.Spaces[1]
	assert.Equal(t, 0, chapel.ReservationCount)
	assert.Equal(t, 0.0, chapel.OccupancyPercent)
}

func TestStatistics_UserActivity(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	users := []*domain.User{
		{ID: 10, Name: "Мария Иванова", Role: domain.RoleTeacher},
		{ID: 11, Name: "Алексей Петров", Role: domain.RoleTeacher},
	}
	resRepo := &fakeReservationRepo{
		listResult: []*domain.Reservation{
			reservation(1, 1, 10, day, "09:00", "10:00", domain.StatusConfirmed),
			reservation(2, 1, 10, day, "11:00", "12:00", domain.StatusCancelled),
		},
	}
	svc := newTestService(resRepo, nil, users, day)

	resp, err := svc.Statistics(context.Background(), models.PeriodAll)
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)

	assert.Equal(t, 2, resp.Users[0].ReservationCount)
	assert.Equal(t, 0, resp.Users[1].ReservationCount)
}

func TestStatistics_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{}, nil, nil, time.Now())

	_, err := svc.Statistics(context.Background(), models.Period("last_year"))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestStatistics_EmptyPeriodDefaultsToAll(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{}, nil, nil, time.Now())

	resp, err := svc.Statistics(context.Background(), models.Period(""))
	require.NoError(t, err)
	assert.Equal(t, models.PeriodAll, resp.Period)
}
