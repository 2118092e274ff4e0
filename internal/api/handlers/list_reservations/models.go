package list_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/campusbook/CB-ReservationService/internal/domain"
	"github.com/campusbook/CB-ReservationService/internal/service/reservations/models"
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	SpaceID         int64   `json:"spaceId"`
	RequesterID     int64   `json:"requesterId"`
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Participants    *int    `json:"participants,omitempty"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ReservationListResponse HTTP response со списком бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

// parseFilters разбирает query-параметры выборки
func parseFilters(query url.Values, req *models.ListRequest) error {
	if s := query.Get("spaceId"); s != "" {
		spaceID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		req.SpaceID = &spaceID
	}
	if s := query.Get("startDate"); s != "" {
		startDate, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return err
		}
		req.StartDate = &startDate
	}
	if s := query.Get("endDate"); s != "" {
		endDate, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return err
		}
		req.EndDate = &endDate
	}
	if s := query.Get("status"); s != "" {
		req.Status = &s
	}
	if s := query.Get("includeTerminal"); s != "" {
		includeTerminal, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		req.IncludeTerminal = includeTerminal
	}
	return nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ReservationListResponse) *ReservationListResponse {
	out := &ReservationListResponse{Reservations: make([]*ReservationResponse, 0, len(resp.Reservations))}
	for _, res := range resp.Reservations {
		out.Reservations = append(out.Reservations, &ReservationResponse{
			ID:              res.ID,
			SpaceID:         res.SpaceID,
			RequesterID:     res.RequesterID,
			Title:           res.Title,
			Date:            res.Date.Format(domain.DateFormat),
			StartTime:       res.StartTime,
			EndTime:         res.EndTime,
			Participants:    res.Participants,
			Status:          res.Status,
			RejectionReason: res.RejectionReason,
			CreatedAt:       res.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       res.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
