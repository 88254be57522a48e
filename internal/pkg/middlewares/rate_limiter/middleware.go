package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"tracker/internal/dto"
	"tracker/pkg/logger"
)

const retryAfterSeconds = 1

// Middleware отвечает 429 с экранной ошибкой, которую можно повторить.
// capacity уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, capacity int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(capacity)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := routeTemplate(r)
			RateLimitedRequestsTotal.WithLabelValues(r.Method, route).Inc()

			reqLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			reqLog.Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
			w.WriteHeader(http.StatusTooManyRequests)

			err := json.NewEncoder(w).Encode(dto.ScreenError{
				Message:   "rate limit exceeded",
				Retryable: true,
			})
			if err != nil {
				reqLog.With(logger.NewField("error", err)).Error("encode JSON response")
			}
		})
	}
}

// routeTemplate не дает сырым путям с идентификаторами раздуть метки метрик.
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return template
}
