package check_availability

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено или удалено
	ErrSpaceNotFound = errors.New("check_availability: space not found")

	// ErrSpaceInactive возвращается, когда помещение закрыто для бронирования
	ErrSpaceInactive = errors.New("check_availability: space is not bookable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
