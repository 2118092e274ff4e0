package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	spaceRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/space"
	"github.com/campusbook/CB-ReservationService/pkg/ptr"
)

// Тексты уведомлений о создании бронирования
const (
	titlePending   = "Заявка отправлена"
	titleConfirmed = "Бронирование создано"

	msgPendingFmt   = "Заявка «%s» на %s (%s–%s) отправлена и ожидает подтверждения администратора."
	msgConfirmedFmt = "Бронирование «%s» на %s (%s–%s) создано и подтверждено."
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	notifier        Notifier
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		notifier:        notifier,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет создание бронирования.
//
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции: выборка броней на (space, date) блокирует строки FOR UPDATE,
// поэтому из двух конкурентных запросов на пересекающийся слот пройдёт
// ровно один, второй получит ErrSlotConflict без каких-либо изменений в БД.
//
// Администратор минует этап подтверждения — его бронь сразу confirmed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: space=%d requester=%d date=%s slot=%s-%s role=%s",
		req.SpaceID, req.RequesterID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.RequesterRole)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	initialStatus := domain.StatusPending
	if req.RequesterRole.IsAdmin() {
		initialStatus = domain.StatusConfirmed
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		space, err := uc.spaceRepo.GetByID(txCtx, req.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				uc.logger.Warn("CreateReservation: space id=%d not found", req.SpaceID)
				return ErrSpaceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get space id=%d: %v", req.SpaceID, err)
			return fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}
		if space.Deleted {
			return ErrSpaceNotFound
		}
		if !space.IsBookable() {
			uc.logger.Warn("CreateReservation: space id=%d is not bookable", req.SpaceID)
			return ErrSpaceInactive
		}

		if err := validateCapacity(req.Participants, space); err != nil {
			uc.logger.Warn("CreateReservation: capacity validation failed: %v", err)
			return err
		}

		// Выборка броней на (space, date) с блокировкой FOR UPDATE —
		// критическая секция проверки доступности
		blocking, err := uc.reservationRepo.List(txCtx, domain.ReservationFilter{
			SpaceID:   ptr.Ptr(req.SpaceID),
			StartDate: ptr.Ptr(req.Date),
			EndDate:   ptr.Ptr(req.Date),
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if conflict := findConflict(blocking, req.StartTime, req.EndTime, 0); conflict != nil {
			uc.logger.Warn("CreateReservation: slot conflicts with reservation id=%d", conflict.ID)
			return fmt.Errorf("%w (id=%d)", ErrSlotConflict, conflict.ID)
		}

		reservation := &domain.Reservation{
			SpaceID:      req.SpaceID,
			RequesterID:  req.RequesterID,
			Title:        req.Title,
			Date:         req.Date,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Participants: req.Participants,
			Status:       initialStatus,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d status=%s", result.ID, result.Status)

	uc.notifyCreated(ctx, result)

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

// notifyCreated уведомляет заявителя о судьбе заявки.
// Ожидающие заявки администратор обнаруживает через выборку pending —
// отдельное уведомление ему не создается.
func (uc *UseCase) notifyCreated(ctx context.Context, res *domain.Reservation) {
	date := res.Date.Format(domain.DateFormat)

	var (
		title   string
		message string
		nType   domain.NotificationType
	)

	if res.Status == domain.StatusConfirmed {
		title = titleConfirmed
		message = fmt.Sprintf(msgConfirmedFmt, res.Title, date, res.StartTime, res.EndTime)
		nType = domain.NotificationSuccess
	} else {
		title = titlePending
		message = fmt.Sprintf(msgPendingFmt, res.Title, date, res.StartTime, res.EndTime)
		nType = domain.NotificationInfo
	}

	if err := uc.notifier.Emit(ctx, res.RequesterID, title, message, nType); err != nil {
		uc.logger.Error("CreateReservation: failed to notify requester=%d: %v", res.RequesterID, err)
	}
}
