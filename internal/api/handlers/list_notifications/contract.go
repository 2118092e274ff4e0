package list_notifications

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/internal/service/notifications/models"
)

type NotificationService interface {
	List(ctx context.Context, recipientID int64, filter domain.NotificationFilter) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
