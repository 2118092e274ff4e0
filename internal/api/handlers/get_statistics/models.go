package get_statistics

import "github.com/campusbook/CB-ReservationService/internal/service/reports/models"

// StatusCounts количество бронирований по статусам
type StatusCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

// SpaceStats статистика по помещению
type SpaceStats struct {
	SpaceID          int64   `json:"spaceId"`
	Name             string  `json:"name"`
	ReservationCount int     `json:"reservationCount"`
	OccupiedHours    float64 `json:"occupiedHours"`
	OccupancyPercent float64 `json:"occupancyPercent"`
}

// UserStats статистика по пользователю
type UserStats struct {
	UserID           int64  `json:"userId"`
	Name             string `json:"name"`
	ReservationCount int    `json:"reservationCount"`
}

// StatisticsResponse HTTP response с агрегированным отчетом
type StatisticsResponse struct {
	Period          string        `json:"period"`
	StatusCounts    StatusCounts  `json:"statusCounts"`
	ApprovalPercent float64       `json:"approvalPercent"`
	Spaces          []*SpaceStats `json:"spaces"`
	Users           []*UserStats  `json:"users"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.StatisticsResponse) *StatisticsResponse {
	out := &StatisticsResponse{
		Period: string(resp.Period),
		StatusCounts: StatusCounts{
			Pending:   resp.StatusCounts.Pending,
			Confirmed: resp.StatusCounts.Confirmed,
			Rejected:  resp.StatusCounts.Rejected,
			Cancelled: resp.StatusCounts.Cancelled,
			Total:     resp.StatusCounts.Total,
		},
		ApprovalPercent: resp.ApprovalPercent,
		Spaces:          make([]*SpaceStats, 0, len(resp.Spaces)),
		Users:           make([]*UserStats, 0, len(resp.Users)),
	}

	for _, s := range resp.Spaces {
		out.Spaces = append(out.Spaces, &SpaceStats{
			SpaceID:          s.SpaceID,
			Name:             s.Name,
			ReservationCount: s.ReservationCount,
			OccupiedHours:    s.OccupiedHours,
			OccupancyPercent: s.OccupancyPercent,
		})
	}
	for _, u := range resp.Users {
		out.Users = append(out.Users, &UserStats{
			UserID:           u.UserID,
			Name:             u.Name,
			ReservationCount: u.ReservationCount,
		})
	}

	return out
}
