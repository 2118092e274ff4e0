package update_space

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/service/spaces/models"
)

type SpaceService interface {
	Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
