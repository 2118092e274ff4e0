package models

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
)

// NotificationResponse уведомление в ответе сервиса
type NotificationResponse struct {
	ID          int64
	RecipientID int64
	Title       string
	Message     string
	Type        string
	Read        bool
	SentAt      time.Time
}

// NotificationListResponse список уведомлений со счётчиком непрочитанных
type NotificationListResponse struct {
	Notifications []*NotificationResponse
	UnreadCount   int
}

// FromDomainNotification конвертирует доменную модель в ответ сервиса
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Message:     n.Message,
		Type:        string(n.Type),
		Read:        n.Read,
		SentAt:      n.SentAt,
	}
}

// FromDomainNotificationList конвертирует список уведомлений
func FromDomainNotificationList(list []*domain.Notification) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]*NotificationResponse, 0, len(list)),
	}
	for _, n := range list {
		if !n.Read {
			resp.UnreadCount++
		}
		resp.Notifications = append(resp.Notifications, FromDomainNotification(n))
	}
	return resp
}
