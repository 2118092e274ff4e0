package update_reservation

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	updateReservation "github.com/campusbook/CB-ReservationService/internal/usecase/update_reservation"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

// UpdateReservationRequest HTTP request model.
// Отсутствующие поля остаются без изменений.
type UpdateReservationRequest struct {
	SpaceID      *int64  `json:"spaceId,omitempty"`
	Title        *string `json:"title,omitempty"`
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	Participants *int    `json:"participants,omitempty"`
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
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID, actorID int64, role domain.Role) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ReservationID: reservationID,
		ActorID:       actorID,
		ActorRole:     role,
		SpaceID:       r.SpaceID,
		Title:         r.Title,
		Participants:  r.Participants,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}
	if r.StartTime != nil {
		start, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &start
	}
	if r.EndTime != nil {
		end, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
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
