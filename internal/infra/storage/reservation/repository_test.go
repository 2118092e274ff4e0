package reservation_test

import (
	reservationStorage "github.com/campusbook/CB-ReservationService/internal/infra/storage/reservation"
	"github.com/campusbook/CB-ReservationService/internal/service/reports"
	"github.com/campusbook/CB-ReservationService/internal/service/reservations"
	"github.com/campusbook/CB-ReservationService/internal/usecase/check_availability"
	"github.com/campusbook/CB-ReservationService/internal/usecase/create_reservation"
	"github.com/campusbook/CB-ReservationService/internal/usecase/update_reservation"
)

// Репозиторий должен удовлетворять контрактам всех потребителей:
// расхождение сигнатур ломает сборку здесь, а не в cmd/main.go
var (
	_ create_reservation.ReservationRepository = (*reservationStorage.Repository)(nil)
	_ update_reservation.ReservationRepository = (*reservationStorage.Repository)(nil)
	_ check_availability.ReservationRepository = (*reservationStorage.Repository)(nil)
	_ reservations.ReservationRepository       = (*reservationStorage.Repository)(nil)
	_ reports.ReservationRepository            = (*reservationStorage.Repository)(nil)
)
