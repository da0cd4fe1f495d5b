package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/clynicx/portal-service/internal/adapters/handler"
	"github.com/clynicx/portal-service/internal/testutil/mocks"
)

func TestHealthHandler_Health(t *testing.T) {
	h := handler.NewHealthHandler(mocks.NewMockSlotStore(), mocks.NewMockProfileDirectory(), "1.2.3", zaptest.NewLogger(t))

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "UP", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		slotErr    error
		dirErr     error
		wantCode   int
		wantStatus string
		wantDown   string
	}{
		{name: "all up", wantCode: http.StatusOK, wantStatus: "UP"},
		{name: "session down", slotErr: errors.New("dial tcp: refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "DOWN", wantDown: "session"},
		{name: "directory down", dirErr: errors.New("dial tcp: refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "DOWN", wantDown: "directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := mocks.NewMockSlotStore()
			slots.PingError = tt.slotErr
			directory := mocks.NewMockProfileDirectory()
			directory.PingError = tt.dirErr

			h := handler.NewHealthHandler(slots, directory, "test", zaptest.NewLogger(t))
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp handler.ReadinessResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantDown != "" {
				assert.Equal(t, "DOWN", resp.Checks[tt.wantDown].Status)
			}
		})
	}
}
