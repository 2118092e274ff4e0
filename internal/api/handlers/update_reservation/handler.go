package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/api/middleware"
	updateReservation "github.com/campusbook/CB-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgNotEditable          = "редактировать можно только заявку в статусе pending"
	msgSpaceNotFound        = "помещение не найдено"
	msgSpaceInactive        = "помещение закрыто для бронирования"
	msgSlotConflict         = "выбранный слот пересекается с существующей бронью"
	msgDateInPast           = "дата бронирования уже прошла"
	msgStartTimeInPast      = "время начала уже прошло"
	msgCapacityExceeded     = "число участников превышает вместимость помещения"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, userID, role)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateReservation.ErrNotEditable):
			h.logger.Warn("PUT /reservations/{id} - Not editable: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotEditable)

		case errors.Is(err, updateReservation.ErrSlotConflict):
			h.logger.Warn("PUT /reservations/{id} - Slot conflict: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, updateReservation.ErrSpaceNotFound):
			h.logger.Warn("PUT /reservations/{id} - Space not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, updateReservation.ErrSpaceInactive):
			h.logger.Warn("PUT /reservations/{id} - Space inactive: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgSpaceInactive)

		case errors.Is(err, updateReservation.ErrDateInPast):
			h.logger.Warn("PUT /reservations/{id} - Date in past: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, updateReservation.ErrStartTimeInPast):
			h.logger.Warn("PUT /reservations/{id} - Start time in past: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, updateReservation.ErrCapacityExceeded):
			h.logger.Warn("PUT /reservations/{id} - Capacity exceeded: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%d, user_id=%d", reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
