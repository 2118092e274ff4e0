package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	reservationRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/reservation"
	"github.com/campusbook/CB-ReservationService/internal/service/reservations/models"
)

// Тексты уведомлений о переходах жизненного цикла
const (
	titleConfirmed = "Бронирование подтверждено"
	titleRejected  = "Бронирование отклонено"
	titleCancelled = "Бронирование отменено"

	msgConfirmedFmt      = "Ваша заявка «%s» на %s (%s–%s) подтверждена администратором."
	msgRejectedFmt       = "Ваша заявка «%s» на %s (%s–%s) отклонена. Причина: %s"
	msgCancelledOwnFmt   = "Ваше бронирование «%s» на %s (%s–%s) отменено."
	msgCancelledAdminFmt = "Ваше бронирование «%s» на %s (%s–%s) отменено администратором."
)

// Service сервис жизненного цикла бронирований:
// чтение, переходы статусов и удаление. Создание и редактирование
// вынесены в usecases — там критическая секция проверки доступности.
type Service struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID.
// Преподаватель видит только свои бронирования, администратор — все.
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64, actorRole domain.Role) (*models.ReservationResponse, error) {
	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actorRole.IsAdmin() && res.RequesterID != actorID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", actorID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// List получает бронирования с учётом роли актора.
// Администратор видит все бронирования (в том числе чужие pending —
// это его входящая очередь заявок); преподаватель — только свои.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ReservationListResponse, error) {
	filter := domain.ReservationFilter{
		SpaceID:         req.SpaceID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeTerminal: req.IncludeTerminal,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%q from user=%d", *req.Status, req.ActorID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	if !req.ActorRole.IsAdmin() {
		filter.RequesterID = &req.ActorID
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for user=%d role=%s", len(list), req.ActorID, req.ActorRole)
	return models.FromDomainReservationList(list), nil
}

// Transition переводит бронирование в новый статус.
//
// Правила:
//   - confirmed и rejected — только администратор;
//   - cancelled — владелец или администратор, пока статус не терминальный
//     (владелец может отменить и уже подтверждённое бронирование);
//   - rejected требует непустой причины, причина сохраняется дословно;
//   - из rejected и cancelled переходов нет.
//
// После успешного перехода заявителю отправляется уведомление.
func (s *Service) Transition(ctx context.Context, id int64, req *models.TransitionRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Transition: reservation id=%d -> %s by user=%d role=%s",
		id, req.NewStatus, req.ActorID, req.ActorRole)

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus, err := models.ToDomainStatus(req.NewStatus)
	if err != nil || newStatus == domain.StatusPending {
		s.logger.Warn("Transition: invalid target status=%q for reservation id=%d", req.NewStatus, id)
		return nil, ErrInvalidTransition
	}

	if !res.CanTransitionTo(newStatus) {
		s.logger.Warn("Transition: %s -> %s not allowed for reservation id=%d", res.Status, newStatus, id)
		return nil, ErrInvalidTransition
	}

	switch newStatus {
	case domain.StatusConfirmed, domain.StatusRejected:
		if !req.ActorRole.IsAdmin() {
			s.logger.Warn("Transition: user=%d is not allowed to set %s", req.ActorID, newStatus)
			return nil, ErrAccessDenied
		}
	case domain.StatusCancelled:
		if !req.ActorRole.IsAdmin() && res.RequesterID != req.ActorID {
			s.logger.Warn("Transition: user=%d may not cancel reservation id=%d", req.ActorID, id)
			return nil, ErrAccessDenied
		}
	}

	var rejectionReason *string
	if newStatus == domain.StatusRejected {
		if req.RejectionReason == nil || *req.RejectionReason == "" {
			s.logger.Warn("Transition: rejection of reservation id=%d without reason", id)
			return nil, ErrReasonRequired
		}
		if len(*req.RejectionReason) > domain.MaxRejectionReasonLength {
			return nil, fmt.Errorf("%w: rejection reason is too long", ErrInvalidInput)
		}
		rejectionReason = req.RejectionReason
	}

	// UPDATE с условием на прочитанный статус: если параллельный переход
	// успел первым, строк не будет и переход отклоняется
	if err := s.reservationRepo.UpdateStatus(ctx, id, res.Status, newStatus, rejectionReason); err != nil {
		if errors.Is(err, reservationRepo.ErrStatusConflict) {
			s.logger.Warn("Transition: reservation id=%d changed status concurrently", id)
			return nil, ErrInvalidTransition
		}
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Transition: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
	}

	res.Status = newStatus
	res.RejectionReason = rejectionReason

	s.notifyTransition(ctx, res, req.ActorID)

	s.logger.Info("Transition: reservation id=%d now %s", id, newStatus)
	return models.FromDomainReservation(res), nil
}

// Delete удаляет бронирование физически (в отличие от отмены).
// Преподаватель может удалить только свою заявку и только пока она pending;
// администратор — любое бронирование в любом статусе.
func (s *Service) Delete(ctx context.Context, id int64, req *models.DeleteRequest) error {
	s.logger.Info("Delete: reservation id=%d by user=%d role=%s", id, req.ActorID, req.ActorRole)

	res, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}

	if !req.ActorRole.IsAdmin() {
		if res.RequesterID != req.ActorID {
			s.logger.Warn("Delete: access denied for user=%d to reservation id=%d", req.ActorID, id)
			return ErrAccessDenied
		}
		if res.Status != domain.StatusPending {
			s.logger.Warn("Delete: reservation id=%d is %s, owner may delete only pending", id, res.Status)
			return ErrInvalidState
		}
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

// getReservation получает бронирование и маппит ошибку репозитория
func (s *Service) getReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return res, nil
}

// notifyTransition отправляет заявителю уведомление об итоге перехода.
// Ошибка отправки не откатывает переход — лента уведомлений допускает
// потерю при сбое, статус бронирования уже зафиксирован.
func (s *Service) notifyTransition(ctx context.Context, res *domain.Reservation, actorID int64) {
	date := res.Date.Format(domain.DateFormat)
	start := res.StartTime.String()
	end := res.EndTime.String()

	var (
		title   string
		message string
		nType   domain.NotificationType
	)

	switch res.Status {
	case domain.StatusConfirmed:
		title = titleConfirmed
		message = fmt.Sprintf(msgConfirmedFmt, res.Title, date, start, end)
		nType = domain.NotificationSuccess
	case domain.StatusRejected:
		reason := ""
		if res.RejectionReason != nil {
			reason = *res.RejectionReason
		}
		title = titleRejected
		message = fmt.Sprintf(msgRejectedFmt, res.Title, date, start, end, reason)
		nType = domain.NotificationError
	case domain.StatusCancelled:
		title = titleCancelled
		if actorID == res.RequesterID {
			message = fmt.Sprintf(msgCancelledOwnFmt, res.Title, date, start, end)
			nType = domain.NotificationInfo
		} else {
			message = fmt.Sprintf(msgCancelledAdminFmt, res.Title, date, start, end)
			nType = domain.NotificationWarning
		}
	default:
		return
	}

	if err := s.notifier.Emit(ctx, res.RequesterID, title, message, nType); err != nil {
		s.logger.Error("notifyTransition: failed to notify user=%d about reservation id=%d: %v",
			res.RequesterID, res.ID, err)
	}
}
