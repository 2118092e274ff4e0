package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	spaceRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/space"
	"github.com/campusbook/CB-ReservationService/pkg/ptr"
)

// UseCase проверка доступности слота на чтении.
// Результат носит справочный характер: авторитетная проверка выполняется
// повторно внутри транзакции создания бронирования, это закрывает гонку
// между проверкой и вставкой.
type UseCase struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		logger:          logger,
	}
}

// Execute выполняет проверку доступности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CheckAvailability: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}
	if space.Deleted {
		return nil, ErrSpaceNotFound
	}
	if !space.IsBookable() {
		uc.logger.Warn("CheckAvailability: space id=%d is not bookable", req.SpaceID)
		return nil, ErrSpaceInactive
	}

	// Слот удерживают только pending и confirmed брони
	blocking, err := uc.reservationRepo.List(ctx, domain.ReservationFilter{
		SpaceID:   ptr.Ptr(req.SpaceID),
		StartDate: ptr.Ptr(req.Date),
		EndDate:   ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	for _, res := range blocking {
		if !res.Blocks() {
			continue
		}
		if res.OverlapsWith(req.StartTime, req.EndTime) {
			uc.logger.Info("CheckAvailability: space=%d date=%s slot %s-%s conflicts with reservation id=%d",
				req.SpaceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, res.ID)
			return &Response{Available: false, ConflictingReservationID: ptr.Ptr(res.ID)}, nil
		}
	}

	return &Response{Available: true}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	return nil
}
