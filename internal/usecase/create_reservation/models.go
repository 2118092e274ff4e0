package create_reservation

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	SpaceID       int64            // ID помещения
	RequesterID   int64            // ID заявителя
	RequesterRole domain.Role      // Роль заявителя (admin минует этап подтверждения)
	Title         string           // Название/причина бронирования
	Date          time.Time        // Календарная дата (без времени)
	StartTime     types.TimeString // Время начала ("09:00")
	EndTime       types.TimeString // Время конца, строго позже начала
	Participants  *int             // Число участников (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	SpaceID      int64
	RequesterID  int64
	Title        string
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Participants *int
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
