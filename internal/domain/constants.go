package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxTitleLength           = 200
	MaxDescriptionLength     = 500
	MaxRejectionReasonLength = 500
)

// BlockingStatuses статусы, при которых бронь удерживает слот.
// Используется при проверке доступности.
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses статусы, из которых нет переходов
var TerminalStatuses = []ReservationStatus{
	StatusRejected,
	StatusCancelled,
}
