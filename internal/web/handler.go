package web

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hxlabs/courseware/internal/catalog"
	"github.com/hxlabs/courseware/internal/labs/registry"
	"github.com/hxlabs/courseware/internal/web/render"
)

// NewHandler builds the HTTP handler: the lesson index at the root,
// every lesson backend under its catalog path prefix, plus health and
// metrics endpoints.
func NewHandler(logger *zap.Logger) (http.Handler, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(requestMetrics)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/", indexHandler(c))

	for _, lesson := range c.Lessons() {
		builder, ok := registry.Lookup(lesson.Slug)
		if !ok {
			return nil, fmt.Errorf("no backend registered for lesson %q", lesson.Slug)
		}
		app := builder()
		r.Route(lesson.PathPrefix(), func(sub chi.Router) {
			app.Routes(sub)
		})
	}

	return r, nil
}

// indexHandler renders the lesson catalog as the landing page.
func indexHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var b strings.Builder
		b.WriteString(`<h1 class="text-3xl font-bold">HTMX Essentials</h1>
<p class="mt-2 text-slate-400">Pick a lesson. Each one is a tiny themed app exercising a handful of hypermedia patterns.</p>
<ul class="mt-6 space-y-3">`)
		for _, lesson := range c.Lessons() {
			b.WriteString(`<li>
  <a href="` + lesson.PathPrefix() + `/" class="text-cyan-400 font-semibold" hx-boost="true">` + html.EscapeString(lesson.Title) + `</a>
  <p class="text-sm text-slate-400">` + html.EscapeString(lesson.Summary) + `</p>
</li>`)
		}
		b.WriteString("</ul>")
		render.Page(w, r, "HTMX Essentials", b.String())
	}
}
