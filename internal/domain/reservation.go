package domain

import (
	"time"

	"github.com/campusbook/CB-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid returns true if the status is one of the known statuses
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Reservation represents a booked time slot in a space.
// Date is a civil calendar day (no timezone shifting); StartTime/EndTime are
// wall-clock times within that day, [StartTime, EndTime) half-open.
type Reservation struct {
	ID          int64
	SpaceID     int64
	RequesterID int64
	Title       string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	// Participants is optional; when set it must not exceed the space capacity
	Participants *int
	Status       ReservationStatus

	// RejectionReason is present only when Status is StatusRejected
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transition is defined from the current status
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusRejected || r.Status == StatusCancelled
}

// Blocks returns true if the reservation holds its slot:
// pending holds it provisionally, confirmed holds it definitively
func (r *Reservation) Blocks() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanTransitionTo reports whether the transition to target is defined.
// pending -> confirmed | rejected | cancelled; confirmed -> cancelled.
// rejected and cancelled are absorbing.
func (r *Reservation) CanTransitionTo(target ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusRejected || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCancelled
	default:
		return false
	}
}

// OverlapsWith tests half-open interval overlap against [start, end):
// start < r.EndTime && r.StartTime < end. Touching boundaries do not overlap.
func (r *Reservation) OverlapsWith(start, end types.TimeString) bool {
	return r.StartTime.IsBefore(end) && start.IsBefore(r.EndTime)
}

// ReservationFilter фильтр для выборки бронирований
type ReservationFilter struct {
	SpaceID         *int64             // Фильтр по помещению (опционально)
	RequesterID     *int64             // Фильтр по заявителю (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeTerminal bool               // Включать ли отклонённые и отменённые
}
