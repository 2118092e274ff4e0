package create_reservation

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	createReservation "github.com/campusbook/CB-ReservationService/internal/usecase/create_reservation"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SpaceID      int64  `json:"spaceId"`
	Title        string `json:"title"`
	Date         string `json:"date"`      // "2026-09-15"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "11:30"
	Participants *int   `json:"participants,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64  `json:"id"`
	SpaceID      int64  `json:"spaceId"`
	RequesterID  int64  `json:"requesterId"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Participants *int   `json:"participants,omitempty"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(requesterID int64, role domain.Role) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		SpaceID:       r.SpaceID,
		RequesterID:   requesterID,
		RequesterRole: role,
		Title:         r.Title,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		Participants:  r.Participants,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		SpaceID:      resp.SpaceID,
		RequesterID:  resp.RequesterID,
		Title:        resp.Title,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Participants: resp.Participants,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
