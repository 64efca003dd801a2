// Package chemlab is the chemistry-bench lesson: mixing reagents can
// fire a VENT_NOW trigger, risky mixes fail with 422, and the bench
// thermometer is polled.
package chemlab

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

// App holds the bench temperature.
type App struct {
	mu          sync.Mutex
	temperature int
}

func New() *App { return &App{temperature: 22} }

// SetTemperature adjusts the bench thermometer reading.
func (a *App) SetTemperature(celsius int) {
	a.mu.Lock()
	a.temperature = celsius
	a.mu.Unlock()
}

// Routes mounts the chemistry lab endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Post("/mix", a.handleMix)
	r.Post("/risky-mix", a.handleRiskyMix)
	r.Get("/temperature", a.handleTemperature)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	temp := a.temperature
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">The Chemistry Bench</h1>
<form hx-post="mix" hx-target="#lab-log" hx-swap="beforeend" class="mt-4">
  <select name="chemical_a">
    <option>Neutral Base</option>
    <option>Acidic Reagent</option>
  </select>
  <select name="chemical_b">
    <option>Saline Solution</option>
    <option>Volatile Catalyst</option>
  </select>
  <button type="submit">Mix</button>
</form>
<button hx-post="risky-mix" hx-target="#lab-log" hx-swap="beforeend">Attempt a risky mix</button>
<div id="fume-hood" hx-get="temperature" hx-trigger="VENT_NOW from:body, every 5s" class="mt-4 font-mono">` + fmt.Sprintf("%d°C", temp) + `</div>
<div id="lab-log" class="mt-4 font-mono text-sm"></div>`
	render.Page(w, r, "The Chemistry Bench", page)
}

// handleMix logs the result; the Acidic Reagent + Volatile Catalyst
// pairing additionally fires VENT_NOW so the fume hood reacts.
func (a *App) handleMix(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">[ERROR LOG] Could not read the mix request.</p>`)
		return
	}
	chemA := strings.TrimSpace(r.PostFormValue("chemical_a"))
	chemB := strings.TrimSpace(r.PostFormValue("chemical_b"))
	if chemA == "" || chemB == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">[ERROR LOG] Two chemicals are required.</p>`)
		return
	}

	if chemA == "Acidic Reagent" && chemB == "Volatile Catalyst" {
		htmx.Trigger(w, "VENT_NOW")
	}

	render.Fragment(w, `<p class="text-green-400">[SUCCESS LOG] Mix complete: `+
		html.EscapeString(chemA)+` + `+html.EscapeString(chemB)+` formed.</p>`)
}

func (a *App) handleRiskyMix(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusUnprocessableEntity,
		`<p class="text-red-400">[ERROR LOG] Unprocessable Entity: Useless brown sludge formed. Experiment failed.</p>`)
}

// handleTemperature serves the polled thermometer reading.
func (a *App) handleTemperature(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	temp := a.temperature
	a.mu.Unlock()
	render.Fragment(w, fmt.Sprintf("%d°C", temp))
}
