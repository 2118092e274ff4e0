package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	checkAvailability "github.com/campusbook/CB-ReservationService/internal/usecase/check_availability"
)

const (
	msgInvalidSpaceID = "некорректный ID помещения"
	msgInvalidParams  = "некорректные параметры: ожидаются date=YYYY-MM-DD, startTime=HH:MM, endTime=HH:MM"
	msgSpaceNotFound  = "помещение не найдено"
	msgSpaceInactive  = "помещение закрыто для бронирования"
	msgInvalidInput   = "некорректный временной интервал"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/availability?date=...&startTime=...&endTime=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/availability - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	query := r.URL.Query()
	req, err := parseRequest(spaceID, query.Get("date"), query.Get("startTime"), query.Get("endTime"))
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/availability - Failed to parse params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/availability - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, checkAvailability.ErrSpaceInactive):
			h.logger.Warn("GET /spaces/{id}/availability - Space inactive: space_id=%d", spaceID)
			handlers.RespondError(w, http.StatusConflict, msgSpaceInactive)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /spaces/{id}/availability - Failed to check availability: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
