package domain

import "time"

// NotificationType classifies a notification for the client mailbox
type NotificationType string

const (
	NotificationSuccess  NotificationType = "success"
	NotificationWarning  NotificationType = "warning"
	NotificationError    NotificationType = "error"
	NotificationInfo     NotificationType = "info"
	NotificationReminder NotificationType = "reminder"
)

// IsValid returns true if the type is one of the known notification types
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationSuccess, NotificationWarning, NotificationError, NotificationInfo, NotificationReminder:
		return true
	}
	return false
}

// Notification is a mailbox entry for a user. Entries are never deleted,
// only marked read by the recipient.
type Notification struct {
	ID          int64
	RecipientID int64
	Title       string
	Message     string
	Type        NotificationType
	Read        bool
	SentAt      time.Time
}

// NotificationFilter режим выборки уведомлений
type NotificationFilter string

const (
	NotificationFilterAll    NotificationFilter = "all"
	NotificationFilterUnread NotificationFilter = "unread"
	NotificationFilterRead   NotificationFilter = "read"
)

// IsValid returns true if the filter is one of the known modes
func (f NotificationFilter) IsValid() bool {
	switch f {
	case NotificationFilterAll, NotificationFilterUnread, NotificationFilterRead:
		return true
	}
	return false
}
