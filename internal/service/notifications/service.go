package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	notificationRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/notification"
	userRepo "github.com/campusbook/CB-ReservationService/internal/infra/storage/user"
	"github.com/campusbook/CB-ReservationService/internal/service/notifications/models"
)

// Service сервис ящика уведомлений
type Service struct {
	notificationRepo NotificationRepository
	userRepo         UserRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	notificationRepo NotificationRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Emit добавляет уведомление в ящик получателя.
// Единственная причина отказа — неизвестный получатель.
func (s *Service) Emit(ctx context.Context, recipientID int64, title, message string, nType domain.NotificationType) error {
	if !nType.IsValid() {
		s.logger.Warn("Emit: invalid notification type=%s for recipient=%d", nType, recipientID)
		return fmt.Errorf("%w: unknown notification type %q", ErrInvalidInput, nType)
	}

	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Emit: recipient id=%d not found", recipientID)
			return ErrRecipientNotFound
		}
		s.logger.Error("Emit: failed to resolve recipient id=%d: %v", recipientID, err)
		return fmt.Errorf("%w: Emit - resolve recipient: %v", ErrInternal, err)
	}

	n := &domain.Notification{
		RecipientID: recipientID,
		Title:       title,
		Message:     message,
		Type:        nType,
	}

	if _, err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error("Emit: failed to create notification for recipient=%d: %v", recipientID, err)
		return fmt.Errorf("%w: Emit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Emit: notification id=%d sent to recipient=%d type=%s", n.ID, recipientID, nType)
	return nil
}

// List получает уведомления получателя в обратном хронологическом порядке
func (s *Service) List(ctx context.Context, recipientID int64, filter domain.NotificationFilter) (*models.NotificationListResponse, error) {
	if filter == "" {
		filter = domain.NotificationFilterAll
	}
	if !filter.IsValid() {
		s.logger.Warn("List: invalid filter=%s for recipient=%d", filter, recipientID)
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, filter)
	}

	list, err := s.notificationRepo.ListByRecipient(ctx, recipientID, filter)
	if err != nil {
		s.logger.Error("List: repository error for recipient=%d: %v", recipientID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d notifications for recipient=%d filter=%s", len(list), recipientID, filter)
	return models.FromDomainNotificationList(list), nil
}

// MarkRead помечает уведомление прочитанным. Идемпотентно.
// Пометить можно только уведомление из собственного ящика:
// чужое уведомление для вызывающего не существует.
func (s *Service) MarkRead(ctx context.Context, id, recipientID int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id, recipientID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkRead: notification id=%d not found for recipient=%d", id, recipientID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	return nil
}

// MarkAllRead помечает все уведомления получателя прочитанными.
// Пустой ящик — no-op, не ошибка.
func (s *Service) MarkAllRead(ctx context.Context, recipientID int64) error {
	if err := s.notificationRepo.MarkAllRead(ctx, recipientID); err != nil {
		s.logger.Error("MarkAllRead: repository error for recipient=%d: %v", recipientID, err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: mailbox of recipient=%d marked read", recipientID)
	return nil
}
