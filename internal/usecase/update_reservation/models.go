package update_reservation

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

// Request модель запроса на редактирование заявки.
// Nil-поля означают "оставить без изменений".
type Request struct {
	ReservationID int64             // ID редактируемой заявки
	ActorID       int64             // ID актора (владелец или администратор)
	ActorRole     domain.Role       // Роль актора
	SpaceID       *int64            // Новое помещение
	Title         *string           // Новое название
	Date          *time.Time        // Новая дата
	StartTime     *types.TimeString // Новое время начала
	EndTime       *types.TimeString // Новое время конца
	Participants  *int              // Новое число участников
}

// Response модель ответа с обновленной заявкой
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
