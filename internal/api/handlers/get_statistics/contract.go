package get_statistics

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/service/reports/models"
)

type ReportService interface {
	Statistics(ctx context.Context, period models.Period) (*models.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
