package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(zap.NewNop())
	require.NoError(t, err)
	return h
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestIndexListsEveryLesson(t *testing.T) {
	h := newTestHandler(t)
	w := get(h, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "HTMX Essentials")
	assert.Contains(t, w.Body.String(), `href="/labs/kitchen/"`)
	assert.Contains(t, w.Body.String(), `href="/labs/garden/"`)
}

func TestLessonsAreMounted(t *testing.T) {
	h := newTestHandler(t)

	w := get(h, "/labs/kitchen/api/kitchen/water")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "💧")

	w = get(h, "/labs/garden/garden/status")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)
	w := get(h, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsExposed(t *testing.T) {
	h := newTestHandler(t)

	get(h, "/healthz")
	w := get(h, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "courseware_http_requests_total")
}

func TestUnknownPathIs404(t *testing.T) {
	h := newTestHandler(t)
	w := get(h, "/labs/time-machine/")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
