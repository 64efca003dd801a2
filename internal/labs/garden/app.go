// Package garden is the community-garden lesson: planting appends
// plots, replacing swaps a plot for a carrot, pulling a weed empties
// the element, and a polled status watches for weeds.
package garden

import (
	"html"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// App holds plot assignments keyed by plot number.
type App struct {
	mu         sync.Mutex
	plots      map[int]string
	nextPlotID int
}

func New() *App {
	return &App{
		plots:      map[int]string{1: "Tomato", 2: "Weed"},
		nextPlotID: 3,
	}
}

var testidSeparators = regexp.MustCompile(`[\s_]+`)
var testidInvalid = regexp.MustCompile(`[^a-z0-9-]`)

// normalizeForTestID turns "Basil Plant" into "basil-plant" so the
// data-testid selectors stay predictable.
func normalizeForTestID(name string) string {
	s := strings.ToLower(name)
	s = testidSeparators.ReplaceAllString(s, "-")
	return testidInvalid.ReplaceAllString(s, "")
}

// Routes mounts the garden endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Post("/garden/plots", a.handlePlant)
	r.Put("/garden/plots/{plotID}", a.handleReplace)
	r.Delete("/garden/plots/{plotID}", a.handlePullWeed)
	r.Get("/garden/status", a.handleStatus)
}

func plotFragment(plotID int, plantName, emoji, buttonSuffix string) string {
	id := strconv.Itoa(plotID)
	return `<div id="plot-` + id + `" data-testid="plant-plot-` + normalizeForTestID(plantName) + `" class="bg-gray-900 p-4 rounded-lg border border-gray-700 flex items-center justify-between">
  <span class="text-xl">` + emoji + ` ` + html.EscapeString(plantName) + `</span>
  <div class="space-x-2">
    <button data-testid="replace-plant-button-` + id + buttonSuffix + `" class="text-xs bg-yellow-600 text-white font-bold py-1 px-3 rounded hover:bg-yellow-700 transition-colors">Replace</button>
  </div>
</div>`
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	ids := make([]int, 0, len(a.plots))
	for id := range a.plots {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var plotMarkup strings.Builder
	for _, id := range ids {
		plotMarkup.WriteString(plotFragment(id, a.plots[id], "🌱", ""))
	}
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">The Community Garden</h1>
<form hx-post="garden/plots" hx-target="#garden-plots" hx-swap="beforeend" class="mt-4">
  <input type="text" name="plant_name" placeholder="What to plant?" required>
  <button type="submit">Plant a seed</button>
</form>
<div id="garden-plots" class="mt-4 space-y-2">` + plotMarkup.String() + `</div>
<div id="garden-status" hx-get="garden/status" hx-trigger="every 5s" class="mt-4"></div>`
	render.Page(w, r, "The Community Garden", page)
}

func (a *App) handlePlant(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the seed packet.</p>`)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("plant_name"))
	if name == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">A plant name is required.</p>`)
		return
	}

	a.mu.Lock()
	plotID := a.nextPlotID
	a.nextPlotID++
	a.plots[plotID] = name
	a.mu.Unlock()

	render.Fragment(w, plotFragment(plotID, name, "🌱", ""))
}

// handleReplace swaps whatever grows in the plot for a carrot.
func (a *App) handleReplace(w http.ResponseWriter, r *http.Request) {
	plotID, err := strconv.Atoi(chi.URLParam(r, "plotID"))
	if err != nil {
		render.FragmentStatus(w, http.StatusNotFound, "Plot not found")
		return
	}

	a.mu.Lock()
	a.plots[plotID] = "Carrot"
	a.mu.Unlock()

	render.Fragment(w, plotFragment(plotID, "Carrot", "🥕", "-after"))
}

// handlePullWeed answers with an empty 200 so the client removes the
// plot element.
func (a *App) handlePullWeed(w http.ResponseWriter, r *http.Request) {
	plotID, err := strconv.Atoi(chi.URLParam(r, "plotID"))
	if err == nil {
		a.mu.Lock()
		delete(a.plots, plotID)
		a.mu.Unlock()
	}
	render.Empty(w)
}

// handleStatus is the polled garden health banner.
func (a *App) handleStatus(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	weedy := false
	for _, plant := range a.plots {
		if plant == "Weed" {
			weedy = true
			break
		}
	}
	a.mu.Unlock()

	if weedy {
		render.Fragment(w, `<div id="garden-status-after" data-testid="garden-status-after" class="mt-2 bg-red-900/50 p-4 rounded-lg border border-red-700">
  <p class="text-center text-red-300">🚨 Needs Weeding</p>
</div>`)
		return
	}
	render.Fragment(w, `<div id="garden-status-after" data-testid="garden-status-after" class="mt-2 bg-green-900/50 p-4 rounded-lg border border-green-700">
  <p class="text-center text-green-300">✨ Garden is Thriving</p>
</div>`)
}
