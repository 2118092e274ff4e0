package mark_all_notifications_read

import (
	"net/http"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/notifications/read-all
//
// Пустой ящик — не ошибка, операция всегда успешна.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /notifications/read-all - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.MarkAllRead(r.Context(), userID); err != nil {
		h.logger.Error("POST /notifications/read-all - Failed to mark all read: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /notifications/read-all - All notifications marked read: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
