// Package stage is the theater stage management lesson: set-piece swaps,
// hx-select inventory picking, and HX-Trigger event cues.
package stage

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

// App holds the stage lesson. The endpoints serve fixed set pieces, so
// there is no mutable state beyond what the markup itself carries.
type App struct{}

// New returns the stage app.
func New() *App {
	return &App{}
}

// Routes mounts the stage endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/set/backdrop-painting", a.handleBackdrop)
	r.Get("/set/fireplace-prop", a.handleFireplace)
	r.Get("/set/add-chair", a.handleAddChair)
	r.Get("/set/add-coat-rack", a.handleAddCoatRack)
	r.Get("/props/inventory", a.handleInventory)
	r.Post("/workshop/request", a.handleWorkshopRequest)
	r.Get("/cue/special-effects", a.handleSpecialEffects)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">Theater Stage Management</h1>
<div id="stage" class="mt-4 p-4 border border-slate-600 rounded">
  <div id="backdrop" class="h-40 bg-slate-800">Plain backdrop</div>
  <div data-testid="fireplace-before" id="fireplace" class="prop p-4 text-center">
    <span class="text-2xl">🔥</span>
    <p class="font-mono text-sm">Old Fireplace</p>
  </div>
  <div id="stage-props"></div>
</div>
<div class="grid gap-2 mt-4">
  <button hx-get="set/backdrop-painting" hx-target="#backdrop">Hang the stormy sea backdrop</button>
  <button hx-get="set/fireplace-prop" hx-target="#fireplace" hx-swap="outerHTML">Modernize the hearth</button>
  <button hx-get="set/add-chair" hx-target="#stage-props" hx-swap="beforeend">Add a chair</button>
  <button hx-get="set/add-coat-rack" hx-target="#stage" hx-swap="afterend">Add a coat rack</button>
  <button hx-get="props/inventory" hx-target="#stage-props" hx-select="#antique-telephone" hx-swap="beforeend">Fetch the telephone from inventory</button>
  <button hx-get="cue/special-effects" hx-target="#cue-result">Cue special effects</button>
</div>
<form hx-post="workshop/request" hx-target="#workshop-result" class="mt-4">
  <input type="number" name="stage_width" value="12">
  <input type="number" name="stage_height" value="8">
  <button type="submit">Order a set piece</button>
</form>
<div id="workshop-result"></div>
<div id="cue-result"></div>`
	render.Page(w, r, "Theater Stage Management", page)
}

func (a *App) handleBackdrop(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<img src="https://placehold.co/200x150/333333/FFF?text=Stormy+Sea" alt="A stormy sea painting" class="w-full h-full object-cover">`)
}

func (a *App) handleFireplace(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div data-testid="fireplace-after" id="fireplace" class="prop bg-blue-900/50 p-4 rounded text-center border border-blue-700">
  <span class="text-2xl">💎</span>
  <p class="font-mono text-sm">Modern Hearth</p>
</div>`)
}

func (a *App) handleAddChair(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div data-testid="chair-prop" class="prop bg-green-900/50 p-4 rounded text-center border border-green-700">
  <span class="text-2xl">🪑</span>
  <p class="font-mono text-sm">New Chair</p>
</div>`)
}

func (a *App) handleAddCoatRack(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div data-testid="coat-rack-prop" class="prop bg-purple-900/50 p-4 rounded text-center border border-purple-700 max-w-xs mx-auto mt-2">
  <span class="text-2xl">🧥</span>
  <p class="font-mono text-sm">Coat Rack</p>
</div>`)
}

// handleInventory returns the whole inventory; the client narrows it to
// #antique-telephone with hx-select.
func (a *App) handleInventory(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div id="inventory-list">
  <div id="fancy-vase" class="prop">
    <span>🏺</span>
    <p>Fancy Vase</p>
  </div>
  <div id="antique-telephone" class="prop p-4 rounded text-center border border-yellow-700 bg-yellow-900/50">
    <span class="text-2xl">☎️</span>
    <p class="font-mono text-sm">Antique Telephone</p>
  </div>
  <div id="grandfather-clock" class="prop">
    <span>🕰️</span>
    <p>Grandfather Clock</p>
  </div>
</div>`)
}

func (a *App) handleWorkshopRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the workshop order form.</p>`)
		return
	}
	width, errW := strconv.Atoi(strings.TrimSpace(r.PostFormValue("stage_width")))
	height, errH := strconv.Atoi(strings.TrimSpace(r.PostFormValue("stage_height")))
	if errW != nil || errH != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Stage dimensions must be whole numbers.</p>`)
		return
	}
	render.Fragment(w, `<div data-testid="workshop-confirmation" class="w-full text-center p-2 bg-gray-700 rounded-md">
  <p class="text-lime-400">Confirmed: New set piece ordered for stage (`+strconv.Itoa(width)+`x`+strconv.Itoa(height)+`).</p>
</div>`)
}

// handleSpecialEffects cues two client-side events via the JSON form of
// HX-Trigger, alongside a confirmation fragment.
func (a *App) handleSpecialEffects(w http.ResponseWriter, _ *http.Request) {
	if err := htmx.TriggerJSON(w, map[string]any{"flash-lights": nil, "play-sound": nil}); err != nil {
		render.FragmentStatus(w, http.StatusInternalServerError, "<p>Could not cue effects.</p>")
		return
	}
	render.Fragment(w, "<p>Effects cued!</p>")
}
