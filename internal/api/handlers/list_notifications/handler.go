package list_notifications

import (
	"net/http"

	"github.com/campusbook/CB-ReservationService/internal/api/handlers"
	"github.com/campusbook/CB-ReservationService/internal/api/middleware"
	"github.com/campusbook/CB-ReservationService/internal/domain"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidFilter = "некорректный фильтр, ожидается all, unread или read"
)

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

// Handle GET /api/v1/notifications?filter=all|unread|read
//
// Пользователь видит только собственный ящик уведомлений.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	filter := domain.NotificationFilterAll
	if s := r.URL.Query().Get("filter"); s != "" {
		filter = domain.NotificationFilter(s)
		if !filter.IsValid() {
			h.logger.Warn("GET /notifications - Invalid filter: %q", s)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
	}

	result, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
