package create_space

import (
	"errors"
	"net/http"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/api/middleware"
	"github.com/campusbook/CB-ReservationService/internal/service/spaces"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "операция доступна только администратору"
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

// Handle POST /api/v1/spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetUserRole(r.Context())
	if !role.IsAdmin() {
		h.logger.Warn("POST /spaces - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrDuplicateName):
			h.logger.Warn("POST /spaces - Duplicate name: %q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("POST /spaces - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /spaces - Failed to create space: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces - Space created: space_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
