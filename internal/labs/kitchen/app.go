// Package kitchen is the "Personal Chef & Smart Kitchen" lesson: one
// endpoint per HTTP verb plus a polled status fragment.
package kitchen

import (
	"html"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

const initialChefStatus = "Ready and waiting..."

// App holds the kitchen lesson state.
type App struct {
	mu         sync.Mutex
	chefStatus string
}

// New returns a kitchen app with the chef ready and waiting.
func New() *App {
	return &App{chefStatus: initialChefStatus}
}

// SetChefStatus updates the status reported by the polling endpoint.
func (a *App) SetChefStatus(status string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chefStatus = status
}

// Routes mounts the kitchen endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/api/kitchen/water", a.handleWater)
	r.Post("/api/kitchen/recipes", a.handleAddRecipe)
	r.Put("/api/kitchen/soup", a.handleSeasonSoup)
	r.Delete("/api/kitchen/toast", a.handleDiscardToast)
	r.Get("/api/kitchen/chef-status", a.handleChefStatus)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	status := a.chefStatus
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">Personal Chef &amp; Smart Kitchen</h1>
<div class="grid gap-4 mt-4">
  <button hx-get="api/kitchen/water" hx-target="#service-window">Request water</button>
  <form hx-post="api/kitchen/recipes" hx-target="#service-window">
    <input type="text" name="recipeName" placeholder="Recipe name" required>
    <button type="submit">Add recipe</button>
  </form>
  <button hx-put="api/kitchen/soup" hx-target="#service-window">Season the soup</button>
  <button hx-delete="api/kitchen/toast" hx-target="#burnt-toast" hx-swap="outerHTML">Discard toast</button>
</div>
<div id="burnt-toast" class="mt-4 text-slate-400">🍞 A slice of burnt toast.</div>
<div id="service-window" class="mt-4"></div>
<div id="chef-status" hx-get="api/kitchen/chef-status" hx-trigger="every 2s" class="mt-4">
  <p><strong>Chef's Status:</strong> ` + html.EscapeString(status) + `</p>
</div>`
	render.Page(w, r, "Personal Chef & Smart Kitchen", page)
}

func (a *App) handleWater(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div class="text-center bg-slate-700/50 p-4 rounded-lg">
  <p class="text-3xl">💧</p>
  <p class="text-slate-300 font-medium">Here is your glass of water.</p>
</div>`)
}

func (a *App) handleAddRecipe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the recipe form.</p>`)
		return
	}
	recipeName := strings.TrimSpace(r.PostFormValue("recipeName"))
	if recipeName == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">A recipe name is required.</p>`)
		return
	}
	render.Fragment(w, `<div class="text-center bg-slate-700/50 p-4 rounded-lg">
  <p class="text-3xl">📖</p>
  <p class="text-slate-300 font-medium">Recipe for "`+html.EscapeString(recipeName)+`" added to the cookbook!</p>
</div>`)
}

func (a *App) handleSeasonSoup(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div class="text-center bg-slate-700 p-4 rounded-lg">
  <p class="text-3xl">🍲</p>
  <p class="text-slate-300 font-medium">The soup has been perfectly seasoned.</p>
</div>`)
}

// handleDiscardToast returns an empty 200 so HTMX removes the swapped
// target without replacement.
func (a *App) handleDiscardToast(w http.ResponseWriter, _ *http.Request) {
	render.Empty(w)
}

func (a *App) handleChefStatus(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	status := a.chefStatus
	a.mu.Unlock()
	render.Fragment(w, "<p><strong>Chef's Status:</strong> "+html.EscapeString(status)+"</p>")
}
