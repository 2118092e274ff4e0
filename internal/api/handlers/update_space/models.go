package update_space

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/service/spaces/models"
)

// UpdateSpaceRequest HTTP request model
type UpdateSpaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Type        string `json:"type"`
}

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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSpaceRequest) ToServiceRequest() *models.UpdateSpaceRequest {
	return &models.UpdateSpaceRequest{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Type:        r.Type,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SpaceResponse) *SpaceResponse {
	return &SpaceResponse{
		ID:                 resp.ID,
		Name:               resp.Name,
		Description:        resp.Description,
		Capacity:           resp.Capacity,
		Type:               resp.Type,
		Active:             resp.Active,
		DeactivationReason: resp.DeactivationReason,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
