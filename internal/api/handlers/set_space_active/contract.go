package set_space_active

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/service/spaces/models"
)

type SpaceService interface {
	SetActive(ctx context.Context, id int64, req *models.SetActiveRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
