package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/clynicx/portal-service/internal/adapters/metrics"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := RequestLogger(zap.New(core), metrics.New())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}))

	req := httptest.NewRequest(http.MethodGet, "/patient", nil)
	req = req.WithContext(WithOriginID(req.Context(), "origin-1"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/patient", fields["path"])
		assert.EqualValues(t, http.StatusSeeOther, fields["status"])
		assert.Equal(t, "origin-1", fields["origin_id"])
	}
}
