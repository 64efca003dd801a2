// Package render carries the response-writing helpers shared by every
// lesson backend.
package render

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/templates"
)

const contentType = "text/html; charset=utf-8"

// Fragment writes an HTML fragment with a 200 status.
func Fragment(w http.ResponseWriter, markup string) {
	FragmentStatus(w, http.StatusOK, markup)
}

// FragmentStatus writes an HTML fragment with an explicit status code.
// Lessons use this for their literal error fragments (402, 403, 404,
// 409, 422, 500).
func FragmentStatus(w http.ResponseWriter, status int, markup string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(markup))
}

// Page renders a lesson page. HTMX requests receive only the content
// fragment; plain navigations receive the fragment wrapped in the shared
// page shell so each lesson works standalone.
func Page(w http.ResponseWriter, r *http.Request, title, markup string) {
	w.Header().Set("Content-Type", contentType)
	if htmx.IsRequest(r) {
		_, _ = w.Write([]byte(markup))
		return
	}
	component := templates.Page(title, templates.Raw(markup))
	_ = component.Render(r.Context(), w)
}

// Component renders a templ component as a full page body.
func Component(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	w.Header().Set("Content-Type", contentType)
	if htmx.IsRequest(r) {
		_ = content.Render(r.Context(), w)
		return
	}
	_ = templates.Page(title, content).Render(r.Context(), w)
}

// Empty writes an empty 200 response, the contract for DELETE endpoints
// whose swap removes the target element.
func Empty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}
