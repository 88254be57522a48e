package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"tracker/internal/dto"
)

// RetryAfter - подсказка клиенту, когда переподключаться к другому экземпляру.
const RetryAfter = 5 * time.Second

// Middleware отбивает запросы, пришедшие после отмены ongoingCtx. Пока идет
// readiness drain, запросы еще обслуживаются. Ответ повторяет экранную ошибку
// списка: клиент показывает "повторить" и закрывает соединение.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", strconv.Itoa(int(RetryAfter.Seconds())))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.ScreenError{
					Message:   "service is shutting down",
					Retryable: true,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
