// Package renovation is the home-makeover lesson: static fragment
// swaps, an hx-select door assembly, and an hx-include cabinet order.
package renovation

import (
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// App is stateless.
type App struct{}

func New() *App { return &App{} }

// Routes mounts the renovation endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/renovation/item", a.handleItem)
	r.Get("/hardware-store/door-assembly", a.handleDoorAssembly)
	r.Post("/order/custom-cabinet", a.handleCustomCabinet)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">Weekend Renovation</h1>
<button hx-get="renovation/item" hx-target="#work-area">Install a new pane</button>
<button hx-get="hardware-store/door-assembly" hx-target="#work-area" hx-select="#doorknob">Fetch just the doorknob</button>
<input type="text" id="cabinet-width" name="width" value="250px">
<button hx-post="order/custom-cabinet" hx-include="#cabinet-width" hx-target="#work-area">Order custom cabinet</button>
<div id="work-area" class="mt-4"></div>`
	render.Page(w, r, "Weekend Renovation", page)
}

func (a *App) handleItem(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div data-testid="new-item-1" class="bg-cyan-900/50 text-cyan-300 p-6 rounded text-center">A shiny new glass pane</div>`)
}

// handleDoorAssembly returns the whole component; the client keeps only
// the #doorknob span via hx-select.
func (a *App) handleDoorAssembly(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div class="door-component">
  <div class="door-panel wood-grain">A sturdy oak door panel.</div>
  <div class="door-hinges">Two iron hinges.</div>
  <span id="doorknob">A brass doorknob</span>
  <div class="kick-plate">A metal kick plate.</div>
</div>`)
}

func (a *App) handleCustomCabinet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the cabinet order.</p>`)
		return
	}
	width := strings.TrimSpace(r.PostFormValue("width"))
	if width == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">A cabinet width is required.</p>`)
		return
	}
	width = html.EscapeString(width)
	render.Fragment(w, `<div data-testid="custom-cabinet" class="bg-orange-900/60 text-orange-300 p-6 rounded text-center" style="width: `+width+`; max-width: 100%;">Custom Cabinet (Width: `+width+`)</div>`)
}
