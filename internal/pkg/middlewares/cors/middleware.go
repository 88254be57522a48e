package cors

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Middleware оборачивает весь роутер, а не mux.Use: preflight OPTIONS
// не совпадает ни с одним маршрутом и до middleware mux не дошел бы.
// Пустой список origins - CORS выключен.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "Last-Event-ID"},
		ExposedHeaders: []string{"Location", "Retry-After", "X-RateLimit-Limit"},
		MaxAge:         300,
	})
}
