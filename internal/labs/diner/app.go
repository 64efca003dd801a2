// Package diner is the build-a-burger lesson: query-parameter menu
// lookups and a multi-value checkbox form.
package diner

import (
	"html"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// App remembers the last plated order so the index page can show it
// after a full reload.
type App struct {
	mu        sync.Mutex
	lastOrder string
}

func New() *App { return &App{} }

// Routes mounts the diner endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/menu-item", a.handleMenuItem)
	r.Post("/custom-order", a.handleCustomOrder)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	last := a.lastOrder
	a.mu.Unlock()
	if last == "" {
		last = `<p class="text-slate-400">No order yet. The grill is waiting.</p>`
	}

	page := `<h1 class="text-2xl font-bold">The Midnight Diner</h1>
<button hx-get="menu-item?name=soup" hx-target="#serving-window">Soup of the Day</button>
<button hx-get="menu-item?name=special" hx-target="#serving-window">Daily Special</button>
<form hx-post="custom-order" hx-target="#serving-window" class="mt-4">
  <label><input type="checkbox" name="toppings" value="Lettuce"> Lettuce</label>
  <label><input type="checkbox" name="toppings" value="Cheddar"> Cheddar</label>
  <label><input type="checkbox" name="toppings" value="Pickles"> Pickles</label>
  <input type="text" name="special_requests" placeholder="Special requests">
  <button type="submit">Build my burger</button>
</form>
<div id="serving-window" class="mt-4">` + last + `</div>`
	render.Page(w, r, "The Midnight Diner", page)
}

func (a *App) handleMenuItem(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("name") {
	case "soup":
		render.Fragment(w, `<div class="text-center p-4 rounded-lg bg-yellow-900/30 border border-yellow-700">
  <p class="text-lg font-semibold text-yellow-200">Soup of the Day</p>
  <p class="text-yellow-400">Enjoy your hot and delicious soup!</p>
</div>`)
	case "special":
		render.Fragment(w, `<div class="text-center p-4 rounded-lg bg-cyan-900/30 border border-cyan-700">
  <p class="text-lg font-semibold text-cyan-200">Daily Special</p>
  <p class="text-cyan-400">Perfectly grilled salmon with a side of asparagus.</p>
</div>`)
	default:
		render.FragmentStatus(w, http.StatusNotFound, "Menu item not found")
	}
}

func (a *App) handleCustomOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the order form.</p>`)
		return
	}
	toppings := r.PostForm["toppings"]
	if len(toppings) == 0 {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Pick at least one topping.</p>`)
		return
	}
	special := strings.TrimSpace(r.PostFormValue("special_requests"))
	if special == "" {
		special = "None"
	}

	var items strings.Builder
	for _, t := range toppings {
		items.WriteString("<li>" + html.EscapeString(t) + "</li>")
	}

	order := `<div class="text-left p-4 rounded-lg bg-green-900/30 border border-green-700">
  <h3 class="text-lg font-semibold text-green-200 text-center mb-3">Your Custom Burger is Ready!</h3>
  <div class="text-sm text-green-300 space-y-2">
    <p><strong class="font-medium text-green-200">Toppings:</strong></p>
    <ul class="list-disc list-inside pl-2">` + items.String() + `</ul>
    <p><strong class="font-medium text-green-200">Special Requests:</strong><br>
      <span class="text-green-400 italic">&quot;` + html.EscapeString(special) + `&quot;</span></p>
  </div>
</div>`

	a.mu.Lock()
	a.lastOrder = order
	a.mu.Unlock()

	render.Fragment(w, order)
}
