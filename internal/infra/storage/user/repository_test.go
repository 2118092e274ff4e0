package user_test

import (
	userStorage "github.com/campusbook/CB-ReservationService/internal/infra/storage/user"
	"github.com/campusbook/CB-ReservationService/internal/service/notifications"
	"github.com/campusbook/CB-ReservationService/internal/service/reports"
)

// Репозиторий должен удовлетворять контрактам всех потребителей
var (
	_ notifications.UserRepository = (*userStorage.Repository)(nil)
	_ reports.UserRepository       = (*userStorage.Repository)(nil)
)
