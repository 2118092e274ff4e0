package create_reservation

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено или удалено
	ErrSpaceNotFound = errors.New("create_reservation: space not found")

	// ErrSpaceInactive возвращается, когда помещение закрыто для новых бронирований
	ErrSpaceInactive = errors.New("create_reservation: space is not bookable")

	// ErrSlotConflict возвращается, когда слот пересекается с существующей бронью
	ErrSlotConflict = errors.New("create_reservation: slot conflicts with an existing reservation")

	// ErrDateInPast возвращается, когда дата бронирования уже прошла
	ErrDateInPast = errors.New("create_reservation: date is in the past")

	// ErrStartTimeInPast возвращается, когда сегодняшний слот начинается раньше текущего времени
	ErrStartTimeInPast = errors.New("create_reservation: start time is already past")

	// ErrCapacityExceeded возвращается, когда участников больше вместимости помещения
	ErrCapacityExceeded = errors.New("create_reservation: participants exceed space capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
