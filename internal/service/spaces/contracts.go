package spaces

import (
	"context"

	"github.com/campusbook/CB-ReservationService/internal/domain"
)

// SpaceRepository интерфейс репозитория помещений
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	List(ctx context.Context) ([]*domain.Space, error)
	Update(ctx context.Context, space *domain.Space) error
	SetActive(ctx context.Context, id int64, active bool, reason *string) error
	SoftDelete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
