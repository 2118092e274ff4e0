package models

import (
	"errors"
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// TransitionRequest запрос на перевод бронирования в новый статус
type TransitionRequest struct {
	ActorID         int64
	ActorRole       domain.Role
	NewStatus       string
	RejectionReason *string
}

// DeleteRequest запрос на удаление бронирования
type DeleteRequest struct {
	ActorID   int64
	ActorRole domain.Role
}

// ListRequest запрос на выборку бронирований с учётом роли актора
type ListRequest struct {
	ActorID   int64
	ActorRole domain.Role

	SpaceID         *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeTerminal bool
}

// ReservationResponse бронирование в ответе сервиса
type ReservationResponse struct {
	ID              int64
	SpaceID         int64
	RequesterID     int64
	Title           string
	Date            time.Time
	StartTime       string
	EndTime         string
	Participants    *int
	Status          string
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse
}

// ToDomainStatus конвертирует строку в статус с валидацией
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainReservation конвертирует доменную модель в ответ сервиса
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID,
		SpaceID:         r.SpaceID,
		RequesterID:     r.RequesterID,
		Title:           r.Title,
		Date:            r.Date,
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		Participants:    r.Participants,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: make([]*ReservationResponse, 0, len(list))}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r))
	}
	return resp
}
