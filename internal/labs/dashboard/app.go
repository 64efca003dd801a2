// Package dashboard is the car dashboard lesson: a polled fuel gauge,
// route calculation, deliberately failing sensors, and an HX-Redirect
// into the driving mode page.
package dashboard

import (
	"html"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

const initialFuelLevel = 98

// App holds the dashboard lesson state.
type App struct {
	mu        sync.Mutex
	fuelLevel int
}

// New returns a dashboard app with a nearly full tank.
func New() *App {
	return &App{fuelLevel: initialFuelLevel}
}

// SetFuelLevel adjusts the gauge reading, clamped to 0-100.
func (a *App) SetFuelLevel(level int) {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	a.mu.Lock()
	a.fuelLevel = level
	a.mu.Unlock()
}

// Routes mounts the dashboard endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/api/fuel-level", a.handleFuelLevel)
	r.Post("/api/calculate-route", a.handleCalculateRoute)
	r.Get("/api/tune-invalid-station", a.handleTuneInvalidStation)
	r.Get("/api/check-gps-sensor", a.handleCheckGPSSensor)
	r.Get("/page/settings/race-mode", a.handleRaceMode)
	r.Get("/page/driving-mode-selection", a.handleDrivingModeSelection)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	fuel := a.fuelLevel
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">Car Dashboard</h1>
<div id="fuel-gauge" hx-get="api/fuel-level" hx-trigger="every 3s" class="mt-4">
  <p class="text-lg text-green-400 font-medium">Fuel: ` + strconv.Itoa(fuel) + `%</p>
</div>
<form hx-post="api/calculate-route" hx-target="#route-result" class="mt-4">
  <input type="text" name="destination" placeholder="Destination" required>
  <label><input type="checkbox" name="avoid_tolls"> Avoid tolls</label>
  <button type="submit">Calculate route</button>
</form>
<div id="route-result"></div>
<div class="grid gap-2 mt-4">
  <button hx-get="api/tune-invalid-station" hx-target="#radio-display">Tune to 187.5 FM</button>
  <button hx-get="api/check-gps-sensor" hx-target="#gps-display">Check GPS sensor</button>
  <button hx-get="page/settings/race-mode">Open race mode settings</button>
</div>
<div id="radio-display"></div>
<div id="gps-display"></div>`
	render.Page(w, r, "Car Dashboard", page)
}

func (a *App) handleFuelLevel(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	fuel := a.fuelLevel
	a.mu.Unlock()
	render.Fragment(w, `<p class="text-lg text-green-400 font-medium">Fuel: `+strconv.Itoa(fuel)+`%</p>`)
}

func (a *App) handleCalculateRoute(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the route form.</p>`)
		return
	}
	destination := strings.TrimSpace(r.PostFormValue("destination"))
	if destination == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">A destination is required.</p>`)
		return
	}
	// Checkboxes submit "on" when ticked and are absent otherwise.
	tollMessage := "via the fastest route"
	if r.PostFormValue("avoid_tolls") == "on" {
		tollMessage = "avoiding tolls"
	}
	render.Fragment(w, `<p class="text-green-400">Route to '`+html.EscapeString(destination)+`' `+tollMessage+` is being calculated...</p>`)
}

func (a *App) handleTuneInvalidStation(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusNotFound, "<p>Error: Station not found.</p>")
}

func (a *App) handleCheckGPSSensor(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusInternalServerError, "<p>Error: GPS sensor is offline.</p>")
}

// handleRaceMode answers 200 with an empty body; the HX-Redirect header
// makes the client navigate instead of swapping.
func (a *App) handleRaceMode(w http.ResponseWriter, _ *http.Request) {
	htmx.Redirect(w, "/labs/dashboard/page/driving-mode-selection")
	render.Empty(w)
}

func (a *App) handleDrivingModeSelection(w http.ResponseWriter, r *http.Request) {
	render.Page(w, r, "Mode Selection", `<h1 class="text-4xl font-bold text-gray-100">Driving Mode Selection</h1>
<p class="text-lg text-gray-400 mt-2">Please select a driving mode before accessing advanced settings.</p>`)
}
