package list_spaces

import (
	"errors"
	"net/http"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/service/spaces"
	"github.com/campusbook/CB-ReservationService/internal/service/spaces/models"
)

const msgInvalidType = "некорректный тип помещения"

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces?q=...&type=...
//
// Поиск по q нечувствителен к регистру и диакритике, фильтр type
// ограничивает выборку одним типом помещений.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.SearchRequest{
		Query: query.Get("q"),
	}
	if t := query.Get("type"); t != "" {
		req.TypeFilter = &t
	}

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("GET /spaces - Invalid search params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidType)

		default:
			h.logger.Error("GET /spaces - Failed to search spaces: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
