package reservations

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus, rejectionReason *string) error
	Delete(ctx context.Context, id int64) error
}

// SpaceRepository интерфейс репозитория помещений
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// Notifier интерфейс отправки уведомлений о переходах жизненного цикла
type Notifier interface {
	Emit(ctx context.Context, recipientID int64, title, message string, nType domain.NotificationType) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
