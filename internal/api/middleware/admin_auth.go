package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/qnovavr/QNOVA-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth закрывает админские ручки статическим токеном.
// Сравнение токенов происходит за константное время.
func AdminAuth(token string, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("AdminAuth: rejected request to %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid_admin_token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
