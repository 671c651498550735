package cli

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/pkg/dbmetrics"
	"github.com/m04kA/FarrierBookingService/pkg/logger"
	"github.com/m04kA/FarrierBookingService/pkg/metrics"
	"github.com/m04kA/FarrierBookingService/pkg/ratelimit"
)

// sql.Open не подключается к БД, поэтому маршруты, не доходящие до репозиториев,
// проверяются без PostgreSQL
func newTestRouter(t *testing.T, limiter ratelimit.Limiter) http.Handler {
	t.Helper()

	db, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg, "test")

	return newRouter(routerDeps{
		db:             dbmetrics.Wrap(db, m),
		metrics:        m,
		metricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		metricsPath:    "/metrics",
		limiter:        limiter,
		log:            logger.NewWithCore(zapcore.NewNopCore()),
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name     string
		method   string
		path     string
		userID   string
		wantCode int
	}{
		{name: "protected without user", method: http.MethodGet, path: "/api/v1/horses", wantCode: http.StatusUnauthorized},
		{name: "bad booking id", method: http.MethodGet, path: "/api/v1/bookings/abc", userID: "100", wantCode: http.StatusBadRequest},
		{name: "bad flexible flag", method: http.MethodGet, path: "/api/v1/booking-steps?flexible=perhaps", userID: "100", wantCode: http.StatusBadRequest},
		{name: "bad customer filter", method: http.MethodGet, path: "/api/v1/customers/me/bookings?filter=soon", userID: "100", wantCode: http.StatusBadRequest},
		{name: "public slots need a date", method: http.MethodGet, path: "/api/v1/providers/1/available-slots?serviceId=2", wantCode: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/stables", wantCode: http.StatusNotFound},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.userID != "" {
				req.Header.Set(middleware.UserIDHeader, tt.userID)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusNotFound {
				assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
			}
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	router := newTestRouter(t, ratelimit.NewMemoryLimiter(60, 1, 0))

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/abc", nil)
		req.Header.Set(middleware.UserIDHeader, "100")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, send())
	assert.Equal(t, http.StatusTooManyRequests, send())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "http_rate_limited_total")
}
