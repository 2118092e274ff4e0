package models

// Period период агрегации отчета
type Period string

const (
	PeriodAll          Period = "all"
	PeriodCurrentMonth Period = "current_month"
)

// IsValid возвращает true для известного периода
func (p Period) IsValid() bool {
	return p == PeriodAll || p == PeriodCurrentMonth
}

// StatusCounts количество бронирований по статусам
type StatusCounts struct {
	Pending   int
	Confirmed int
	Rejected  int
	Cancelled int
	Total     int
}

// SpaceStats статистика по помещению
type SpaceStats struct {
	SpaceID          int64
	Name             string
	ReservationCount int
	OccupiedHours    float64
	OccupancyPercent float64
}

// UserStats статистика по пользователю
type UserStats struct {
	UserID           int64
	Name             string
	ReservationCount int
}

// StatisticsResponse агрегированный отчет за период
type StatisticsResponse struct {
	Period          Period
	StatusCounts    StatusCounts
	ApprovalPercent float64
	Spaces          []*SpaceStats
	Users           []*UserStats
}
