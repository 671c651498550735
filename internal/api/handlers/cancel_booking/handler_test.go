package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/bookings"
	"github.com/m04kA/FarrierBookingService/internal/service/bookings/models"
)

type recordingService struct {
	got *models.CancelBookingRequest
	err error
}

func (s *recordingService) Cancel(_ context.Context, _ int64, req *models.CancelBookingRequest) error {
	s.got = req
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/4/cancel", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": "4"})
	return req.WithContext(middleware.WithUserID(req.Context(), 100))
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &recordingService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(`{"cancellationReason":"  horse is\n lame "}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(100), svc.got.UserID)
	assert.Equal(t, "horse is lame", svc.got.CancellationReason)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &recordingService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.got.CancellationReason)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{err: bookings.ErrBookingNotFound, wantCode: http.StatusNotFound},
		{err: bookings.ErrAccessDenied, wantCode: http.StatusForbidden},
		{err: bookings.ErrCannotCancel, wantCode: http.StatusConflict},
		{err: bookings.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{err: bookings.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&recordingService{err: tt.err}, nopLogger{}).Handle(rec, newRequest(`{}`))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
