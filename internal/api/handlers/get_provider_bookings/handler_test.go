package get_provider_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/bookings"
	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

type stubService struct {
	got *models.GetProviderBookingsRequest
	err error
}

func (s *stubService) GetProviderBookings(_ context.Context, req *models.GetProviderBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestToServiceRequest(t *testing.T) {
	day := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	req, err := ToServiceRequest(1, 500, url.Values{"date": {"2025-06-11"}, "status": {"pending"}, "includeInactive": {"true"}})
	require.NoError(t, err)
	assert.Equal(t, day, *req.StartDate)
	assert.Equal(t, day, *req.EndDate)
	assert.Equal(t, "pending", *req.Status)
	assert.True(t, req.IncludeInactive)

	req, err = ToServiceRequest(1, 500, url.Values{"startDate": {"2025-06-01"}})
	require.NoError(t, err)
	assert.NotNil(t, req.StartDate)
	assert.Nil(t, req.EndDate)

	for _, q := range []url.Values{
		{"date": {"06/11/2025"}},
		{"includeInactive": {"maybe"}},
		{"startDate": {"2025-06-10"}, "endDate": {"2025-06-01"}},
	} {
		_, err := ToServiceRequest(1, 500, q)
		assert.Error(t, err, q.Encode())
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		svcErr   error
		wantCode int
	}{
		{name: "ok", query: "?date=2025-06-11", wantCode: http.StatusOK},
		{name: "bad query", query: "?date=tomorrow", wantCode: http.StatusBadRequest},
		{name: "not owner", svcErr: bookings.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "unknown provider", svcErr: bookings.ErrProviderNotFound, wantCode: http.StatusNotFound},
		{name: "bad status", query: "?status=lost", svcErr: bookings.ErrInvalidInput, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/1/bookings"+tt.query, nil)
			req = mux.SetURLVars(req, map[string]string{"providerId": "1"})
			req = req.WithContext(middleware.WithUserID(req.Context(), 500))
			rec := httptest.NewRecorder()

			NewHandler(&stubService{err: tt.svcErr}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
