package update_space

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
	msgDuplicateName      = "помещение с таким названием уже существует"
	msgInvalidInput       = "некорректные данные помещения"
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

// Handle PUT /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if !role.IsAdmin() {
		h.logger.Warn("PUT /spaces/{id} - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), spaceID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("PUT /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, spaces.ErrDuplicateName):
			h.logger.Warn("PUT /spaces/{id} - Duplicate name: space_id=%d, name=%q", spaceID, req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("PUT /spaces/{id} - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /spaces/{id} - Failed to update space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /spaces/{id} - Space updated: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
