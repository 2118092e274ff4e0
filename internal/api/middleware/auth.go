package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/campusbook/CB-ReservationService/internal/domain"
)

// Заголовки идентификации, проставляемые шлюзом
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Auth извлекает идентификатор и роль пользователя из заголовков запроса
// и кладет их в контекст. Запросы без корректного X-User-ID отклоняются.
// Неизвестная роль приводится к teacher.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"отсутствует или некорректен заголовок X-User-ID"}`))
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		if !role.IsValid() {
			role = domain.RoleTeacher
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	return role, ok
}
