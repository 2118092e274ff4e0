package transition_reservation

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	Transition(ctx context.Context, id int64, req *models.TransitionRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
