// Package labtest holds shared helpers for exercising lesson backends in
// package tests.
package labtest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/labs"
)

// Mount returns an http.Handler serving the lesson at the root path.
func Mount(app labs.App) http.Handler {
	r := chi.NewRouter()
	app.Routes(r)
	return r
}

// Get performs a GET against the mounted lesson.
func Get(h http.Handler, path string) *httptest.ResponseRecorder {
	return Do(h, http.MethodGet, path, nil)
}

// PostForm performs a POST with an urlencoded body.
func PostForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	return Do(h, http.MethodPost, path, form)
}

// PutForm performs a PUT with an urlencoded body.
func PutForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	return Do(h, http.MethodPut, path, form)
}

// Delete performs a DELETE against the mounted lesson.
func Delete(h http.Handler, path string) *httptest.ResponseRecorder {
	return Do(h, http.MethodDelete, path, nil)
}

// Do performs an arbitrary request. A non-nil form is sent urlencoded.
// Every request carries HX-Request so handlers respond with bare
// fragments, matching how the lesson UIs call them.
func Do(h http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set(htmx.HeaderRequest, "true")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DoPage performs a plain (non-HTMX) GET, the way a browser navigation
// would, so full-page rendering paths are covered.
func DoPage(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
