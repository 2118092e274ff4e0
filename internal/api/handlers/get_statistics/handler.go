package get_statistics

import (
	"errors"
	"net/http"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/api/middleware"
	"github.com/campusbook/CB-ReservationService/internal/service/reports"
	"github.com/campusbook/CB-ReservationService/internal/service/reports/models"
)

const (
	msgForbidden     = "операция доступна только администратору"
	msgInvalidPeriod = "некорректный период, ожидается all или current_month"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/statistics?period=all|current_month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if !role.IsAdmin() {
		h.logger.Warn("GET /reports/statistics - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	period := models.PeriodAll
	if s := r.URL.Query().Get("period"); s != "" {
		period = models.Period(s)
	}

	result, err := h.service.Statistics(r.Context(), period)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/statistics - Invalid period: %q", period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/statistics - Failed to build statistics: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
