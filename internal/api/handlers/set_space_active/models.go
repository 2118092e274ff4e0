package set_space_active

import "github.com/campusbook/CB-ReservationService/internal/service/spaces/models"

// SetActiveRequest HTTP request model.
// При деактивации (active=false) причина обязательна.
type SetActiveRequest struct {
	Active bool    `json:"active"`
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetActiveRequest) ToServiceRequest() *models.SetActiveRequest {
	return &models.SetActiveRequest{
		Active: r.Active,
		Reason: r.Reason,
	}
}
