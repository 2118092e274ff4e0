package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда у актора нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается, когда переход не определён
	// для текущего статуса (в том числе из терминальных статусов)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrReasonRequired возвращается при отклонении без причины
	ErrReasonRequired = errors.New("rejection reason is required")

	// ErrInvalidState возвращается, когда операция не допустима
	// в текущем статусе бронирования
	ErrInvalidState = errors.New("operation not allowed in current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
