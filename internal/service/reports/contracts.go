package reports

import (
	"context"
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// SpaceRepository интерфейс репозитория помещений
type SpaceRepository interface {
	List(ctx context.Context) ([]*domain.Space, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
