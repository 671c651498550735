package update_route_order_status

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
	"github.com/m04kA/FarrierBookingService/internal/service/routeorders"
	"github.com/m04kA/FarrierBookingService/internal/service/routeorders/models"
)

type recordingService struct {
	gotID int64
	got   *models.UpdateStatusRequest
	err   error
}

func (s *recordingService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.RouteOrderResponse, error) {
	s.gotID, s.got = id, req
	if s.err != nil {
		return nil, s.err
	}
	return &models.RouteOrderResponse{ID: id, Status: req.Status}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/route-orders/8/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"orderId": "8"})
	return req.WithContext(middleware.WithUserID(req.Context(), 300))
}

func TestHandle_Updated(t *testing.T) {
	svc := &recordingService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(`{"status":"cancelled","reason":"snowed in"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(8), svc.gotID)
	assert.Equal(t, int64(300), svc.got.UserID)
	require.NotNil(t, svc.got.Reason)
	assert.Equal(t, "snowed in", *svc.got.Reason)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "empty body", body: "", wantCode: http.StatusBadRequest},
		{name: "invalid status", body: `{"status":"lost"}`, err: routeorders.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "not found", body: `{"status":"completed"}`, err: routeorders.ErrRouteOrderNotFound, wantCode: http.StatusNotFound},
		{name: "not a party", body: `{"status":"completed"}`, err: routeorders.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "transition", body: `{"status":"in_route"}`, err: routeorders.ErrInvalidTransition, wantCode: http.StatusConflict},
		{name: "internal", body: `{"status":"completed"}`, err: routeorders.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&recordingService{err: tt.err}, nopLogger{}).Handle(rec, newRequest(tt.body))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
