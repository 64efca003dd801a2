package lego

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestPartFragments(t *testing.T) {
	h := labtest.Mount(New())

	tests := []struct {
		name     string
		path     string
		contains []string
	}{
		{name: "pilot", path: "/lego/pilot", contains: []string{"<span>LEGO Pilot</span>"}},
		{name: "window wall", path: "/lego/window-wall", contains: []string{"wall-section-1-final", "Window Wall"}},
		{name: "top brick", path: "/lego/top-brick", contains: []string{"bg-red-500", "Brick"}},
		{name: "tree", path: "/lego/tree", contains: []string{`data-testid="tree"`, "bg-green-700"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := labtest.Get(h, tc.path)
			assert.Equal(t, http.StatusOK, w.Code)
			for _, want := range tc.contains {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestCastleInstructionsIsFullDocument(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/lego/castle-instructions")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<html>")
	assert.Contains(t, body, `id="drawbridge-piece"`)
	assert.Contains(t, body, `id="tower-piece"`)
	assert.Contains(t, body, `id="gate-piece"`)
}

func TestIndexRendersBuildSurface(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.DoPage(h, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Empty cockpit")
	assert.Contains(t, w.Body.String(), "hx-select")
}
