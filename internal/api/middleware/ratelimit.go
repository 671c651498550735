package middleware

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FarrierBookingService/internal/api/handlers"
	"github.com/m04kA/FarrierBookingService/pkg/metrics"
	"github.com/m04kA/FarrierBookingService/pkg/ratelimit"
)

// RateLimit ограничивает частоту запросов по X-User-ID, а без него по IP клиента.
// При ошибке хранилища лимитера запрос пропускается.
// m может быть nil, если метрики выключены.
func RateLimit(limiter ratelimit.Limiter, m *metrics.Metrics, logger handlers.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("RateLimit: limiter unavailable, passing request key=%s: %v", key, err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Warn("RateLimit: too many requests key=%s %s %s", key, r.Method, r.URL.Path)
				if m != nil {
					m.RateLimitedTotal.WithLabelValues(routeTemplate(r)).Inc()
				}
				handlers.RespondTooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if id, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64); err == nil && id > 0 {
		return "user:" + strconv.FormatInt(id, 10)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
