package check_availability

import (
	"time"

	"github.com/campusbook/CB-ReservationService/pkg/types"
)

// Request параметры проверки доступности слота
type Request struct {
	SpaceID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response результат проверки.
// Если слот занят, ConflictingReservationID указывает на одну из
// пересекающихся броней (порядок выбора не гарантируется).
type Response struct {
	Available                bool
	ConflictingReservationID *int64
}
