package htmx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRequest(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "true", value: "true", want: true},
		{name: "case insensitive", value: "True", want: true},
		{name: "absent", value: "", want: false},
		{name: "other value", value: "1", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.value != "" {
				r.Header.Set(HeaderRequest, tc.value)
			}
			assert.Equal(t, tc.want, IsRequest(r))
		})
	}
}

func TestIsRequestNil(t *testing.T) {
	assert.False(t, IsRequest(nil))
	assert.False(t, IsBoosted(nil))
	assert.Empty(t, Target(nil))
}

func TestResponseHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	Redirect(w, "/home")
	PushURL(w, "/book/dune")
	Retarget(w, "#error-panel")
	Reswap(w, "outerHTML")
	Refresh(w)

	assert.Equal(t, "/home", w.Header().Get(HeaderRedirect))
	assert.Equal(t, "/book/dune", w.Header().Get(HeaderPushURL))
	assert.Equal(t, "#error-panel", w.Header().Get(HeaderRetarget))
	assert.Equal(t, "outerHTML", w.Header().Get(HeaderReswap))
	assert.Equal(t, "true", w.Header().Get(HeaderRefresh))
}

func TestTrigger(t *testing.T) {
	w := httptest.NewRecorder()
	Trigger(w, "newBreakingNews")
	assert.Equal(t, "newBreakingNews", w.Header().Get(HeaderTrigger))
}

func TestTriggerJSON(t *testing.T) {
	w := httptest.NewRecorder()
	err := TriggerJSON(w, map[string]any{"flash-lights": nil, "play-sound": nil})
	require.NoError(t, err)

	got := w.Header().Get(HeaderTrigger)
	assert.Contains(t, got, `"flash-lights":null`)
	assert.Contains(t, got, `"play-sound":null`)
}

func TestTriggerJSONRequiresEvents(t *testing.T) {
	w := httptest.NewRecorder()
	require.Error(t, TriggerJSON(w, nil))
}

func TestOOB(t *testing.T) {
	got := OOB("news-ticker", "<p>solar flare</p>")
	assert.Equal(t, `<div id="news-ticker" hx-swap-oob="true"><p>solar flare</p></div>`, got)
}

func TestOOBEscapesID(t *testing.T) {
	got := OOB(`a"b`, "x")
	assert.Contains(t, got, `id="a&#34;b"`)
}
