package create_reservation

import (
	"errors"
	"net/http"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/api/middleware"
	createReservation "github.com/campusbook/CB-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSpaceNotFound      = "помещение не найдено"
	msgSpaceInactive      = "помещение закрыто для бронирования"
	msgSlotConflict       = "выбранный слот пересекается с существующей бронью"
	msgDateInPast         = "дата бронирования уже прошла"
	msgStartTimeInPast    = "время начала уже прошло"
	msgCapacityExceeded   = "число участников превышает вместимость помещения"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, role)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations - Slot conflict: user_id=%d, space_id=%d", userID, req.SpaceID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createReservation.ErrSpaceNotFound):
			h.logger.Warn("POST /reservations - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createReservation.ErrSpaceInactive):
			h.logger.Warn("POST /reservations - Space inactive: space_id=%d", req.SpaceID)
			handlers.RespondError(w, http.StatusConflict, msgSpaceInactive)

		case errors.Is(err, createReservation.ErrDateInPast):
			h.logger.Warn("POST /reservations - Date in past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrStartTimeInPast):
			h.logger.Warn("POST /reservations - Start time in past: user_id=%d, start=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: space_id=%d", req.SpaceID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, space_id=%d, error=%v",
				userID, req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, status=%s",
		result.ID, userID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
