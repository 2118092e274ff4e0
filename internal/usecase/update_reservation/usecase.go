package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	reservationRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/reservation"
	spaceRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/space"
	"github.com/campusbook/CB-ReservationService/pkg/ptr"
)

// UseCase use case редактирования заявки на бронирование
type UseCase struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет редактирование заявки.
//
// Редактируются только заявки в статусе pending — подтвержденную бронь
// можно лишь отменить и создать заново. После слияния изменений заявка
// проходит тот же конвейер проверок, что и при создании: валидация полей,
// вместимость, дата, конфликт слота (собственная бронь из проверки
// исключается). Проверка и запись выполняются в сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d actor=%d role=%s", req.ReservationID, req.ActorID, req.ActorRole)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if existing.RequesterID != req.ActorID && !req.ActorRole.IsAdmin() {
			uc.logger.Warn("UpdateReservation: actor=%d is not allowed to edit reservation id=%d", req.ActorID, existing.ID)
			return ErrAccessDenied
		}
		if existing.Status != domain.StatusPending {
			uc.logger.Warn("UpdateReservation: reservation id=%d has status %s", existing.ID, existing.Status)
			return ErrNotEditable
		}

		updated := mergeChanges(existing, req)

		if err := validateMerged(updated, now); err != nil {
			uc.logger.Warn("UpdateReservation: merged validation failed: %v", err)
			return err
		}

		space, err := uc.spaceRepo.GetByID(txCtx, updated.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				uc.logger.Warn("UpdateReservation: space id=%d not found", updated.SpaceID)
				return ErrSpaceNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get space id=%d: %v", updated.SpaceID, err)
			return fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}
		if space.Deleted {
			return ErrSpaceNotFound
		}
		if !space.IsBookable() {
			uc.logger.Warn("UpdateReservation: space id=%d is not bookable", updated.SpaceID)
			return ErrSpaceInactive
		}
		if err := validateCapacity(updated.Participants, space); err != nil {
			uc.logger.Warn("UpdateReservation: capacity validation failed: %v", err)
			return err
		}

		// Выборка броней на (space, date) с блокировкой FOR UPDATE;
		// собственная заявка исключается из проверки конфликта
		blocking, err := uc.reservationRepo.List(txCtx, domain.ReservationFilter{
			SpaceID:   ptr.Ptr(updated.SpaceID),
			StartDate: ptr.Ptr(updated.Date),
			EndDate:   ptr.Ptr(updated.Date),
		})
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if conflict := findConflict(blocking, updated.StartTime, updated.EndTime, updated.ID); conflict != nil {
			uc.logger.Warn("UpdateReservation: slot conflicts with reservation id=%d", conflict.ID)
			return fmt.Errorf("%w (id=%d)", ErrSlotConflict, conflict.ID)
		}

		saved, err := uc.reservationRepo.Update(txCtx, updated)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: updated reservation id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		SpaceID:      result.SpaceID,
		RequesterID:  result.RequesterID,
		Title:        result.Title,
		Date:         result.Date,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Participants: result.Participants,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// mergeChanges накладывает непустые поля запроса на существующую заявку
func mergeChanges(existing *domain.Reservation, req *Request) *domain.Reservation {
	updated := *existing

	if req.SpaceID != nil {
		updated.SpaceID = *req.SpaceID
	}
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		updated.EndTime = *req.EndTime
	}
	if req.Participants != nil {
		updated.Participants = req.Participants
	}

	return &updated
}
