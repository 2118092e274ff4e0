package get_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/service/spaces"
)

const (
	msgInvalidSpaceID = "некорректный ID помещения"
	msgNotFound       = "помещение не найдено"
)

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

// Handle GET /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	result, err := h.service.GetByID(r.Context(), spaceID)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /spaces/{id} - Failed to get space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
