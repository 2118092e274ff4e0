package list_spaces

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/service/spaces/models"
)

// SpaceResponse HTTP response model
type SpaceResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Capacity           int     `json:"capacity"`
	Type               string  `json:"type"`
	Active             bool    `json:"active"`
	DeactivationReason *string `json:"deactivationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// SpaceListResponse HTTP response со списком помещений
type SpaceListResponse struct {
	Spaces []*SpaceResponse `json:"spaces"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SpaceListResponse) *SpaceListResponse {
	out := &SpaceListResponse{Spaces: make([]*SpaceResponse, 0, len(resp.Spaces))}
	for _, s := range resp.Spaces {
		out.Spaces = append(out.Spaces, &SpaceResponse{
			ID:                 s.ID,
			Name:               s.Name,
			Description:        s.Description,
			Capacity:           s.Capacity,
			Type:               s.Type,
			Active:             s.Active,
			DeactivationReason: s.DeactivationReason,
			CreatedAt:          s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
