package list_notifications

import (
	"time"

	"github.com/campusbook/CB-ReservationService/internal/service/notifications/models"
)

// NotificationResponse HTTP response model
type NotificationResponse struct {
	ID          int64  `json:"id"`
	RecipientID int64  `json:"recipientId"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	Read        bool   `json:"read"`
	SentAt      string `json:"sentAt"`
}

// NotificationListResponse HTTP response со списком уведомлений
type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int                     `json:"unreadCount"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.NotificationListResponse) *NotificationListResponse {
	out := &NotificationListResponse{
		Notifications: make([]*NotificationResponse, 0, len(resp.Notifications)),
		UnreadCount:   resp.UnreadCount,
	}
	for _, n := range resp.Notifications {
		out.Notifications = append(out.Notifications, &NotificationResponse{
			ID:          n.ID,
			RecipientID: n.RecipientID,
			Title:       n.Title,
			Message:     n.Message,
			Type:        n.Type,
			Read:        n.Read,
			SentAt:      n.SentAt.Format(time.RFC3339),
		})
	}
	return out
}
