package notifications

import "errors"

var (
	// ErrRecipientNotFound возвращается, когда получатель уведомления не найден
	ErrRecipientNotFound = errors.New("recipient not found")

	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications service: internal error")
)
