// Package museum is the gallery lesson: slug-addressed exhibit fragments,
// an archive fetch, and a DELETE-driven sculpture move.
package museum

import (
	"html"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// Exhibit is one entry in the gallery.
type Exhibit struct {
	Name        string
	Description string
}

// App holds the museum lesson state.
type App struct {
	mu       sync.Mutex
	exhibits map[string]Exhibit
}

// New returns a museum app with the three founding exhibits.
func New() *App {
	return &App{
		exhibits: map[string]Exhibit{
			"impressionism": {
				Name:        "Impressionism",
				Description: "A 19th-century art movement characterized by relatively small, thin, yet visible brush strokes and an open composition.",
			},
			"surrealism": {
				Name:        "Surrealism",
				Description: "A cultural movement which developed in Europe in the aftermath of World War I and was largely influenced by Dada.",
			},
			"cubism": {
				Name:        "Cubism",
				Description: "An early-20th-century avant-garde art movement that revolutionized European painting and sculpture.",
			},
		},
	}
}

// Routes mounts the museum endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/exhibit/{slug}", a.handleExhibit)
	r.Post("/request-from-archives", a.handleArchiveRequest)
	r.Delete("/move-sculpture", a.handleMoveSculpture)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	slugs := make([]string, 0, len(a.exhibits))
	for slug := range a.exhibits {
		slugs = append(slugs, slug)
	}
	a.mu.Unlock()
	sort.Strings(slugs)

	var b strings.Builder
	b.WriteString(`<h1 class="text-2xl font-bold">Gallery of Curiosities</h1><nav class="flex gap-2 mt-4">`)
	for _, slug := range slugs {
		b.WriteString(`<button hx-get="exhibit/` + html.EscapeString(slug) + `" hx-target="#exhibit-area" hx-push-url="true">` + html.EscapeString(slug) + `</button>`)
	}
	b.WriteString(`</nav>
<div id="exhibit-area" class="mt-4">Choose an exhibit.</div>
<div id="archive-area" class="mt-4">
  <button data-testid="request-archive-btn" hx-post="request-from-archives" hx-target="#archive-area">Request Piece from Archives</button>
</div>
<div id="sculpture-area" class="mt-4">
  <button data-testid="move-sculpture-btn" hx-delete="move-sculpture" hx-target="#sculpture-area">Move 'The Thinker'</button>
</div>`)
	render.Page(w, r, "Gallery of Curiosities", b.String())
}

func (a *App) handleExhibit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	a.mu.Lock()
	exhibit, ok := a.exhibits[slug]
	a.mu.Unlock()
	if !ok {
		render.FragmentStatus(w, http.StatusNotFound, "<p>Exhibit not found.</p>")
		return
	}

	render.Fragment(w, `<h3 class="text-xl font-bold text-gray-100">Exhibit: `+html.EscapeString(exhibit.Name)+`</h3>
<p class="mt-2">`+html.EscapeString(exhibit.Description)+` The browser URL would now be <code class="bg-gray-900 px-1 rounded">`+html.EscapeString(r.URL.Path)+`</code>.</p>`)
}

func (a *App) handleArchiveRequest(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div class="flex items-center space-x-4">
  <button data-testid="request-archive-btn" class="bg-indigo-600 hover:bg-indigo-700 text-white font-bold py-2 px-4 rounded">Request Piece from Archives</button>
  <div data-testid="archive-content-area" class="bg-gray-700 border border-gray-600 rounded p-3">
    <p><span class="font-semibold text-gray-200">Retrieved:</span> 'The Starry Night' by Vincent van Gogh.</p>
  </div>
</div>`)
}

func (a *App) handleMoveSculpture(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div class="flex items-center justify-between">
  <div data-testid="sculpture-status" class="flex-grow p-3 rounded-md bg-green-900/50 border border-green-500/60">
    <p class="text-lg text-green-300"><span class="font-semibold text-green-200">Success! Sculpture:</span> 'The Thinker'</p>
    <p class="text-sm text-green-400">New Location: West Garden</p>
  </div>
  <button data-testid="move-sculpture-btn" class="bg-gray-600 text-white font-bold py-2 px-4 rounded ml-4 opacity-50 cursor-not-allowed" disabled>Moved</button>
</div>`)
}
