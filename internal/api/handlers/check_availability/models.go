package check_availability

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	checkAvailability "github.com/campusbook/CB-ReservationService/internal/usecase/check_availability"
	"github.com/campusbook/CB-ReservationService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available                bool   `json:"available"`
	ConflictingReservationID *int64 `json:"conflictingReservationId,omitempty"`
}

// parseRequest собирает запрос use case из path/query параметров
func parseRequest(spaceID int64, dateStr, startStr, endStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	start, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		SpaceID:   spaceID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:                resp.Available,
		ConflictingReservationID: resp.ConflictingReservationID,
	}
}
