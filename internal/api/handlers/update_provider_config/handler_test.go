package update_provider_config

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/providers"
	"github.com/m04kA/FarrierBookingService/internal/service/providers/models"
)

type stubService struct {
	got *models.UpdateConfigRequest
	err error
}

func (s *stubService) UpdateConfig(_ context.Context, providerID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.ConfigResponse{ProviderID: providerID}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/providers/1/config", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"providerId": "1"})
	return req.WithContext(middleware.WithUserID(req.Context(), 500))
}

func TestHandle_Updated(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, newRequest(
		`{"slotDurationMinutes":30,"schedule":[{"weekday":"saturday","isOpen":true,"openTime":"09:00","closeTime":"13:00"}]}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(500), svc.got.UserID)
	assert.Equal(t, 30, *svc.got.SlotDurationMinutes)
	require.Len(t, svc.got.Schedule, 1)
	assert.Equal(t, "13:00", *svc.got.Schedule[0].CloseTime)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "unknown field", body: `{"userId":500}`, wantCode: http.StatusBadRequest},
		{name: "not owner", body: `{}`, err: providers.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "missing provider", body: `{}`, err: providers.ErrProviderNotFound, wantCode: http.StatusNotFound},
		{name: "out of bounds", body: `{}`, err: fmt.Errorf("%w: slotDurationMinutes", providers.ErrInvalidInput), wantCode: http.StatusBadRequest},
		{name: "internal", body: `{}`, err: providers.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&stubService{err: tt.err}, nopLogger{}).Handle(rec, newRequest(tt.body))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
