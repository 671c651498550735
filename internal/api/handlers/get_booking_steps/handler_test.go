package get_booking_steps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/domain"
	"github.com/m04kA/FarrierBookingService/internal/usecase/resolve_booking_steps"
)

type recordingUseCase struct {
	got *resolve_booking_steps.Request
	err error
}

func (u *recordingUseCase) Execute(_ context.Context, req *resolve_booking_steps.Request) (*resolve_booking_steps.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	steps, err := domain.ResolveSteps(1, req.IsFlexible)
	if err != nil {
		return nil, err
	}
	id := int64(4)
	return &resolve_booking_steps.Response{
		Steps:          steps,
		HorseCount:     1,
		DefaultHorseID: &id,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/booking-steps"+query, nil)
	return req.WithContext(middleware.WithUserID(req.Context(), 100))
}

func TestHandle(t *testing.T) {
	uc := &recordingUseCase{}
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, newRequest(""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(100), uc.got.CustomerID)
	assert.False(t, uc.got.IsFlexible)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []domain.WizardStep{domain.StepSelectType, domain.StepSelectTime, domain.StepConfirm}, resp.Steps)
	require.NotNil(t, resp.DefaultHorseID)
	assert.Equal(t, int64(4), *resp.DefaultHorseID)
}

func TestHandle_Flexible(t *testing.T) {
	uc := &recordingUseCase{}
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, newRequest("?flexible=true"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.got.IsFlexible)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		err      error
		wantCode int
	}{
		{name: "bad flexible", query: "?flexible=maybe", wantCode: http.StatusBadRequest},
		{name: "invalid input", err: resolve_booking_steps.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", err: resolve_booking_steps.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&recordingUseCase{err: tt.err}, nopLogger{}).Handle(rec, newRequest(tt.query))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
