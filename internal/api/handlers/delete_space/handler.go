package delete_space

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
	msgInvalidSpaceID = "некорректный ID помещения"
	msgForbidden      = "операция доступна только администратору"
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

// Handle DELETE /api/v1/spaces/{spaceId}
//
// Помещение удаляется мягко: существующие бронирования продолжают
// резолвить его по ID, но для новых бронирований оно недоступно.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if !role.IsAdmin() {
		h.logger.Warn("DELETE /spaces/{id} - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	if err := h.service.SoftDelete(r.Context(), spaceID); err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("DELETE /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /spaces/{id} - Failed to delete space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /spaces/{id} - Space deleted: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
