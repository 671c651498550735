package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/FarrierBookingService/internal/usecase/create_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp, ok := args.Get(0).(*createBooking.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, userID int64, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.CustomerID == 100 && r.ProviderID == 1 && r.HorseID == nil &&
			r.StartTime == "10:00" && r.Date.Equal(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
	})).Return(&createBooking.Response{
		ID: 9, CustomerID: 100, ProviderID: 1, ServiceID: 5, HorseID: 10,
		BookingDate: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
		DurationMinutes: 60, Status: "pending", ServiceName: "Trim",
		ServicePrice: decimal.RequireFromString("45.5"), HorseName: "Bella",
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), 100,
		`{"providerId":1,"serviceId":5,"bookingDate":"2025-06-11","startTime":"10:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-06-11", body["bookingDate"])
	assert.Equal(t, "45.5", body["servicePrice"])
	assert.Equal(t, "Bella", body["horseName"])
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"providerId":1,"serviceId":5,"bookingDate":"2025-06-11","startTime":"10:00"}`

	tests := []struct {
		name     string
		userID   int64
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "no user", body: valid, wantCode: http.StatusUnauthorized},
		{name: "broken json", userID: 1, body: `{`, wantCode: http.StatusBadRequest},
		{name: "bad date", userID: 1, body: `{"bookingDate":"11.06.2025","startTime":"10:00"}`, wantCode: http.StatusBadRequest},
		{name: "bad time", userID: 1, body: `{"bookingDate":"2025-06-11","startTime":"ten"}`, wantCode: http.StatusBadRequest},
		{name: "slot taken", userID: 1, body: valid, ucErr: createBooking.ErrSlotNotAvailable, wantCode: http.StatusConflict},
		{name: "provider missing", userID: 1, body: valid, ucErr: createBooking.ErrProviderNotFound, wantCode: http.StatusNotFound},
		{name: "horse missing", userID: 1, body: valid, ucErr: createBooking.ErrHorseNotFound, wantCode: http.StatusNotFound},
		{name: "horse required", userID: 1, body: valid, ucErr: createBooking.ErrHorseRequired, wantCode: http.StatusBadRequest},
		{name: "closed", userID: 1, body: valid, ucErr: createBooking.ErrProviderClosed, wantCode: http.StatusBadRequest},
		{name: "wrapped input error", userID: 1, body: valid, ucErr: fmt.Errorf("%w: notes too long", createBooking.ErrInvalidInput), wantCode: http.StatusBadRequest},
		{name: "internal", userID: 1, body: valid, ucErr: createBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(NewHandler(uc, nopLogger{}), tt.userID, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
