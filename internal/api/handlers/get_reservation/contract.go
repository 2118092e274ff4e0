package get_reservation

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetByID(ctx context.Context, id int64, actorID int64, actorRole domain.Role) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
