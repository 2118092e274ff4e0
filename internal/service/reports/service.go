package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/internal/service/reports/models"
	"github.com/campusbook/CB-ReservationService/pkg/ptr"
)

// Service read-side агрегация по бронированиям, помещениям и пользователям.
// Ничего не мутирует; все проценты безопасны на пустом множестве (0, не NaN).
type Service struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	userRepo        UserRepository
	timeProvider    TimeProvider
	// operatingMinutes длина рабочего окна учреждения за один день,
	// знаменатель процента занятости
	operatingMinutes int
	logger           Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	userRepo UserRepository,
	operatingMinutes int,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo:  reservationRepo,
		spaceRepo:        spaceRepo,
		userRepo:         userRepo,
		timeProvider:     &RealTimeProvider{},
		operatingMinutes: operatingMinutes,
		logger:           logger,
	}
}

// Statistics считает агрегаты за период: количества по статусам,
// долю одобрений, занятость помещений и активность пользователей
func (s *Service) Statistics(ctx context.Context, period models.Period) (*models.StatisticsResponse, error) {
	if period == "" {
		period = models.PeriodAll
	}
	if !period.IsValid() {
		s.logger.Warn("Statistics: invalid period=%q", period)
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	filter := domain.ReservationFilter{IncludeTerminal: true}
	if period == models.PeriodCurrentMonth {
		start, end := currentMonthBounds(s.timeProvider.Now())
		filter.StartDate = ptr.Ptr(start)
		filter.EndDate = ptr.Ptr(end)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Statistics: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: Statistics - list reservations: %v", ErrInternal, err)
	}

	spaces, err := s.spaceRepo.List(ctx)
	if err != nil {
		s.logger.Error("Statistics: failed to list spaces: %v", err)
		return nil, fmt.Errorf("%w: Statistics - list spaces: %v", ErrInternal, err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("Statistics: failed to list users: %v", err)
		return nil, fmt.Errorf("%w: Statistics - list users: %v", ErrInternal, err)
	}

	resp := &models.StatisticsResponse{
		Period:          period,
		StatusCounts:    countByStatus(reservations),
		ApprovalPercent: approvalPercent(reservations),
		Spaces:          s.spaceStats(reservations, spaces, period),
		Users:           userStats(reservations, users),
	}

	s.logger.Info("Statistics: period=%s reservations=%d spaces=%d users=%d",
		period, resp.StatusCounts.Total, len(resp.Spaces), len(resp.Users))
	return resp, nil
}

// countByStatus считает бронирования по статусам
func countByStatus(reservations []*domain.Reservation) models.StatusCounts {
	var counts models.StatusCounts
	for _, r := range reservations {
		switch r.Status {
		case domain.StatusPending:
			counts.Pending++
		case domain.StatusConfirmed:
			counts.Confirmed++
		case domain.StatusRejected:
			counts.Rejected++
		case domain.StatusCancelled:
			counts.Cancelled++
		}
		counts.Total++
	}
	return counts
}

// approvalPercent доля одобренных среди рассмотренных заявок.
// Рассмотренные — confirmed и rejected; pending и cancelled не учитываются.
func approvalPercent(reservations []*domain.Reservation) float64 {
	var confirmed, decided int
	for _, r := range reservations {
		switch r.Status {
		case domain.StatusConfirmed:
			confirmed++
			decided++
		case domain.StatusRejected:
			decided++
		}
	}
	if decided == 0 {
		return 0
	}
	return float64(confirmed) / float64(decided) * 100
}

// spaceStats считает занятые часы и процент занятости по каждому помещению.
// Слот удерживают pending и confirmed брони. Знаменатель — рабочее окно
// учреждения, умноженное на число дней периода.
func (s *Service) spaceStats(reservations []*domain.Reservation, spaces []*domain.Space, period models.Period) []*models.SpaceStats {
	type acc struct {
		count          int
		occupiedMinute int
	}
	bySpace := make(map[int64]*acc, len(spaces))
	for _, space := range spaces {
		bySpace[space.ID] = &acc{}
	}

	for _, r := range reservations {
		a, ok := bySpace[r.SpaceID]
		if !ok {
			// Бронь удалённого помещения — в статистику помещений не попадает
			continue
		}
		a.count++
		if r.Blocks() {
			minutes, err := r.StartTime.MinutesUntil(r.EndTime)
			if err == nil && minutes > 0 {
				a.occupiedMinute += minutes
			}
		}
	}

	windowMinutes := s.operatingMinutes * periodDays(reservations, period, s.timeProvider.Now())

	stats := make([]*models.SpaceStats, 0, len(spaces))
	for _, space := range spaces {
		a := bySpace[space.ID]
		st := &models.SpaceStats{
			SpaceID:          space.ID,
			Name:             space.Name,
			ReservationCount: a.count,
			OccupiedHours:    float64(a.occupiedMinute) / 60,
		}
		if windowMinutes > 0 {
			st.OccupancyPercent = float64(a.occupiedMinute) / float64(windowMinutes) * 100
		}
		stats = append(stats, st)
	}
	return stats
}

// periodDays число дней в знаменателе занятости.
// Для текущего месяца — количество дней месяца; для всего времени —
// диапазон от самой ранней до самой поздней даты брони включительно
// (0 дней на пустом множестве — процент занятости остаётся нулевым).
func periodDays(reservations []*domain.Reservation, period models.Period, now time.Time) int {
	if period == models.PeriodCurrentMonth {
		start, end := currentMonthBounds(now)
		return int(end.Sub(start).Hours()/24) + 1
	}

	if len(reservations) == 0 {
		return 0
	}

	minDate := reservations[0].Date
	maxDate := reservations[0].Date
	for _, r := range reservations[1:] {
		if r.Date.Before(minDate) {
			minDate = r.Date
		}
		if r.Date.After(maxDate) {
			maxDate = r.Date
		}
	}
	return int(maxDate.Sub(minDate).Hours()/24) + 1
}

// userStats считает бронирования по пользователям
func userStats(reservations []*domain.Reservation, users []*domain.User) []*models.UserStats {
	byUser := make(map[int64]int, len(users))
	for _, r := range reservations {
		byUser[r.RequesterID]++
	}

	stats := make([]*models.UserStats, 0, len(users))
	for _, u := range users {
		stats = append(stats, &models.UserStats{
			UserID:           u.ID,
			Name:             u.Name,
			ReservationCount: byUser[u.ID],
		})
	}
	return stats
}

// currentMonthBounds первый и последний день текущего месяца
func currentMonthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}
