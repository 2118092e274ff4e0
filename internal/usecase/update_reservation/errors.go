package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrAccessDenied возвращается, когда актор не владелец и не администратор
	ErrAccessDenied = errors.New("update_reservation: access denied")

	// ErrNotEditable возвращается при попытке редактировать бронь не в статусе pending
	ErrNotEditable = errors.New("update_reservation: only pending reservations can be edited")

	// ErrSpaceNotFound возвращается, когда целевое помещение не найдено или удалено
	ErrSpaceNotFound = errors.New("update_reservation: space not found")

	// ErrSpaceInactive возвращается, когда целевое помещение закрыто для бронирований
	ErrSpaceInactive = errors.New("update_reservation: space is not bookable")

	// ErrSlotConflict возвращается, когда новый слот пересекается с чужой бронью
	ErrSlotConflict = errors.New("update_reservation: slot conflicts with an existing reservation")

	// ErrDateInPast возвращается, когда новая дата бронирования уже прошла
	ErrDateInPast = errors.New("update_reservation: date is in the past")

	// ErrStartTimeInPast возвращается, когда сегодняшний слот начинается раньше текущего времени
	ErrStartTimeInPast = errors.New("update_reservation: start time is already past")

	// ErrCapacityExceeded возвращается, когда участников больше вместимости помещения
	ErrCapacityExceeded = errors.New("update_reservation: participants exceed space capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
