package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}
	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}
	if !req.RequesterRole.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.RequesterRole)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return err
	}
	if req.Participants != nil && *req.Participants <= 0 {
		return fmt.Errorf("%w: participants must be positive", ErrInvalidInput)
	}

	return nil
}

// validateTitle проверяет название бронирования
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if len(title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}
	return nil
}

// validateTimeRange проверяет интервал [start, end)
func validateTimeRange(start, end types.TimeString) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что слот не в прошлом.
// Дата сравнивается как гражданская (по календарным дням, без UTC-сдвига);
// для сегодняшнего дня время начала не может быть раньше текущего.
func validateDate(date time.Time, start types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrDateInPast
	}
	if isSameDay(date, now) && start.IsBefore(types.NewTimeString(now)) {
		return ErrStartTimeInPast
	}
	return nil
}

// validateCapacity проверяет число участников против вместимости помещения
func validateCapacity(participants *int, space *domain.Space) error {
	if participants == nil {
		return nil
	}
	if *participants > space.Capacity {
		return fmt.Errorf("%w: %d participants, capacity %d", ErrCapacityExceeded, *participants, space.Capacity)
	}
	return nil
}

// findConflict возвращает первую бронь, удерживающую пересекающийся слот.
// excludeID исключает бронь из проверки (для редактирования существующей).
func findConflict(reservations []*domain.Reservation, start, end types.TimeString, excludeID int64) *domain.Reservation {
	for _, res := range reservations {
		if res.ID == excludeID {
			continue
		}
		if !res.Blocks() {
			continue
		}
		if res.OverlapsWith(start, end) {
			return res
		}
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
