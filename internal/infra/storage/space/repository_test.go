package space_test

import (
	spaceStorage "github.com/campusbook/CB-ReservationService/internal/infra/storage/space"
	"github.com/campusbook/CB-ReservationService/internal/service/reports"
	"github.com/campusbook/CB-ReservationService/internal/service/reservations"
	"github.com/campusbook/CB-ReservationService/internal/service/spaces"
	"github.com/campusbook/CB-ReservationService/internal/usecase/check_availability"
	"github.com/campusbook/CB-ReservationService/internal/usecase/create_reservation"
	"github.com/campusbook/CB-ReservationService/internal/usecase/update_reservation"
)

// Репозиторий должен удовлетворять контрактам всех потребителей
var (
	_ spaces.SpaceRepository             = (*spaceStorage.Repository)(nil)
	_ reservations.SpaceRepository       = (*spaceStorage.Repository)(nil)
	_ reports.SpaceRepository            = (*spaceStorage.Repository)(nil)
	_ create_reservation.SpaceRepository = (*spaceStorage.Repository)(nil)
	_ update_reservation.SpaceRepository = (*spaceStorage.Repository)(nil)
	_ check_availability.SpaceRepository = (*spaceStorage.Repository)(nil)
)
