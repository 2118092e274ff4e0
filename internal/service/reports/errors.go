package reports

import "errors"

var (
	// ErrInvalidPeriod возвращается при неизвестном периоде отчета
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports service: internal error")
)
