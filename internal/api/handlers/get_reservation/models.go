package get_reservation

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/internal/service/reservations/models"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	SpaceID         int64   `json:"spaceId"`
	RequesterID     int64   `json:"requesterId"`
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Participants    *int    `json:"participants,omitempty"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationResponse) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		SpaceID:         resp.SpaceID,
		RequesterID:     resp.RequesterID,
		Title:           resp.Title,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		Participants:    resp.Participants,
		Status:          resp.Status,
		RejectionReason: resp.RejectionReason,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
