package set_space_active

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/api/middleware"
	"github.com/campusbook/CB-ReservationService/internal/service/spaces"
)

const (
	msgInvalidSpaceID     = "некорректный ID помещения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "операция доступна только администратору"
	msgNotFound           = "помещение не найдено"
	msgReasonRequired     = "при деактивации помещения требуется причина"
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

// Handle PATCH /api/v1/spaces/{spaceId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if !role.IsAdmin() {
		h.logger.Warn("PATCH /spaces/{id}/active - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /spaces/{id}/active - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /spaces/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetActive(r.Context(), spaceID, req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("PATCH /spaces/{id}/active - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, spaces.ErrReasonRequired):
			h.logger.Warn("PATCH /spaces/{id}/active - Missing deactivation reason: space_id=%d", spaceID)
			handlers.RespondBadRequest(w, msgReasonRequired)

		default:
			h.logger.Error("PATCH /spaces/{id}/active - Failed to set active: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /spaces/{id}/active - Space active=%t: space_id=%d", req.Active, spaceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
