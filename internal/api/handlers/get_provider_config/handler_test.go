package get_provider_config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FarrierBookingService/internal/service/providers"
	"github.com/m04kA/FarrierBookingService/internal/service/providers/models"
)

type stubService struct {
	resp *models.ConfigResponse
	err  error
}

func (s stubService) GetConfig(context.Context, int64) (*models.ConfigResponse, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc stubService, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/providers/"+id+"/config", nil),
		map[string]string{"providerId": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(stubService{resp: &models.ConfigResponse{ProviderID: 1, SlotDurationMinutes: 60, IsDefault: true}}, "1")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["isDefault"])
	assert.NotContains(t, body, "updatedAt")

	assert.Equal(t, http.StatusBadRequest, serve(stubService{}, "zero").Code)
	assert.Equal(t, http.StatusNotFound, serve(stubService{err: providers.ErrProviderNotFound}, "1").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(stubService{err: providers.ErrInternal}, "1").Code)
}
