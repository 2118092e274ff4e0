package list_spaces

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/service/spaces/models"
)

type SpaceService interface {
	Search(ctx context.Context, req *models.SearchRequest) (*models.SpaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
