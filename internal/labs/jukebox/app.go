// Package jukebox is the coin-operated lesson: inserting a coin
// unlocks the song selectors, previews are read-only lookups, and
// selections append to a queue with hx-swap="beforeend".
package jukebox

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// Song is one record in the jukebox carousel.
type Song struct {
	ID      string
	Name    string
	Runtime string
}

var songs = []Song{
	{ID: "B5", Name: "Hound Dog", Runtime: "2:16"},
	{ID: "C1", Name: "Jailhouse Rock", Runtime: "2:35"},
	{ID: "A3", Name: "Johnny B. Goode", Runtime: "2:41"},
}

func songByID(id string) (Song, bool) {
	for _, s := range songs {
		if s.ID == id {
			return s, true
		}
	}
	return Song{}, false
}

// App tracks whether a coin was inserted and the play queue.
type App struct {
	mu      sync.Mutex
	enabled bool
	queue   []string
}

func New() *App { return &App{} }

// Routes mounts the jukebox endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Post("/enable-jukebox", a.handleEnable)
	r.Get("/songs/preview", a.handlePreview)
	r.Post("/songs/queue", a.handleQueue)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">The Roadside Jukebox</h1>
<button hx-post="enable-jukebox" hx-target="#song-selectors">Insert coin</button>
<div id="song-selectors" class="mt-4">
  <p class="text-slate-400" data-testid="song-selectors-disabled">Insert a coin to light up the selectors.</p>
</div>
<div id="main-display" class="mt-4 font-mono text-slate-400">-- READY --</div>
<h2 class="mt-4 font-semibold">Up next</h2>
<ul id="song-queue-list"></ul>`
	render.Page(w, r, "The Roadside Jukebox", page)
}

// handleEnable flips the coin latch and returns the live selector grid.
func (a *App) handleEnable(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	a.enabled = true
	a.mu.Unlock()

	var b strings.Builder
	b.WriteString(`<div data-testid="song-selectors-enabled" class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-4 mt-4">`)
	for _, s := range songs {
		b.WriteString(`<div class="bg-gray-700 p-4 rounded-lg flex flex-col justify-between">
  <p class="font-bold text-lg text-gray-100">` + s.ID + ` - ` + s.Name + `</p>
  <div class="flex items-center space-x-2 mt-4">
    <button data-testid="song-` + s.ID + `-preview-enabled" hx-get="songs/preview?songId=` + s.ID + `" hx-target="#main-display" class="flex-1 bg-blue-600 hover:bg-blue-700 text-white font-bold py-2 px-4 rounded transition-colors">Preview</button>
    <button data-testid="song-` + s.ID + `-select-enabled" hx-post="songs/queue" hx-vals='{"songId": "` + s.ID + `"}' hx-target="#song-queue-list" hx-swap="beforeend" class="flex-1 bg-indigo-600 hover:bg-indigo-700 text-white font-bold py-2 px-4 rounded transition-colors">Select</button>
  </div>
</div>`)
	}
	b.WriteString("</div>")
	render.Fragment(w, b.String())
}

func (a *App) handlePreview(w http.ResponseWriter, r *http.Request) {
	song, ok := songByID(r.URL.Query().Get("songId"))
	if !ok {
		render.FragmentStatus(w, http.StatusNotFound, "Song not found")
		return
	}
	render.Fragment(w, `<div data-testid="main-display-after-preview" class="text-center text-green-400 py-4">
  <p class="text-xl font-mono">Song: `+song.Name+`</p>
  <p class="text-lg font-mono">Runtime: `+song.Runtime+`</p>
</div>`)
}

func (a *App) handleQueue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, "Could not read the selection.")
		return
	}
	song, ok := songByID(r.PostFormValue("songId"))
	if !ok {
		render.FragmentStatus(w, http.StatusNotFound, "Song not found")
		return
	}

	a.mu.Lock()
	a.queue = append(a.queue, song.ID)
	a.mu.Unlock()

	render.Fragment(w, `<li data-testid="queue-item-`+song.ID+`">`+song.ID+` - `+song.Name+`</li>`)
}
