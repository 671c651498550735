package delete_horse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/horses"
)

type stubService struct {
	err error
}

func (s stubService) Delete(_ context.Context, _, _ int64) error {
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		err      error
		wantCode int
	}{
		{name: "deleted", id: "3", wantCode: http.StatusNoContent},
		{name: "bad id", id: "0", wantCode: http.StatusBadRequest},
		{name: "not found", id: "3", err: horses.ErrHorseNotFound, wantCode: http.StatusNotFound},
		{name: "has bookings", id: "3", err: horses.ErrHorseInUse, wantCode: http.StatusConflict},
		{name: "internal", id: "3", err: horses.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/horses/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"horseId": tt.id})
			req = req.WithContext(middleware.WithUserID(req.Context(), 100))

			NewHandler(stubService{err: tt.err}, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusNoContent {
				assert.Zero(t, rec.Body.Len())
			}
		})
	}
}
