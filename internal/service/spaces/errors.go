package spaces

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда помещение не найдено или удалено
	ErrSpaceNotFound = errors.New("space not found")

	// ErrDuplicateName возвращается, когда имя помещения уже занято
	ErrDuplicateName = errors.New("space name already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrReasonRequired возвращается при деактивации без указания причины
	ErrReasonRequired = errors.New("deactivation reason is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("spaces service: internal error")
)
