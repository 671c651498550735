package list_horses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/api/middleware"
	"github.com/m04kA/FarrierBookingService/internal/service/horses"
	"github.com/m04kA/FarrierBookingService/internal/service/horses/models"
)

type stubService struct {
	gotCustomer int64
	err         error
}

func (s *stubService) List(_ context.Context, customerID int64) (*models.HorseListResponse, error) {
	s.gotCustomer = customerID
	if s.err != nil {
		return nil, s.err
	}
	return &models.HorseListResponse{Horses: []models.HorseResponse{{ID: 1, Name: "Clover"}, {ID: 2, Name: "Duke"}}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/horses", nil)

	NewHandler(svc, nopLogger{}).Handle(rec, req.WithContext(middleware.WithUserID(req.Context(), 100)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(100), svc.gotCustomer)

	var resp models.HorseListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Horses, 2)
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/horses", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/horses", nil)
	NewHandler(&stubService{err: horses.ErrInternal}, nopLogger{}).Handle(rec, req.WithContext(middleware.WithUserID(req.Context(), 100)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
