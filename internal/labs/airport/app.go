// Package airport is the flight board lesson: a polled departures table,
// urgent HX-Trigger announcements, boarding pass scans with redirects,
// and boosted flight detail rows.
package airport

import (
	"html"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

// Flight is one row on the departures board.
type Flight struct {
	ID          string
	Destination string
	Gate        string
	Status      string
	StatusColor string
	Airline     string
	Aircraft    string
}

// App holds the flight board state.
type App struct {
	mu      sync.Mutex
	order   []string
	flights map[string]*Flight
}

// New returns a board with the default three departures.
func New() *App {
	defaults := []*Flight{
		{ID: "FL123", Destination: "New York (JFK)", Gate: "A2 (Gate Change)", Status: "Boarding", StatusColor: "blue", Airline: "American Airlines", Aircraft: "Boeing 777"},
		{ID: "BA456", Destination: "London (LHR)", Gate: "B3", Status: "On Time", StatusColor: "green", Airline: "British Airways", Aircraft: "Airbus A380"},
		{ID: "AF789", Destination: "Paris (CDG)", Gate: "C5", Status: "Delayed", StatusColor: "yellow", Airline: "Air France", Aircraft: "Boeing 787"},
	}
	app := &App{flights: make(map[string]*Flight, len(defaults))}
	for _, f := range defaults {
		app.order = append(app.order, f.ID)
		app.flights[f.ID] = f
	}
	return app
}

// Routes mounts the airport endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/api/flights", a.handleFlights)
	r.Post("/api/announce-gate-change", a.handleAnnounceGateChange)
	r.Post("/api/scan-pass", a.handleScanPass)
	r.Get("/flights/{flightID}", a.handleFlightDetails)
	r.Get("/access-denied", a.handleAccessDenied)
}

func (a *App) flightRows() string {
	var b strings.Builder
	for _, id := range a.order {
		f := a.flights[id]
		b.WriteString(`<tr class="hover:bg-gray-700/50 cursor-pointer" hx-boost="true" hx-target="#flight-details-content">
  <td class="p-3" data-testid="flight-row-link-` + f.ID + `-updated"><a href="flights/` + f.ID + `">` + f.ID + `</a></td>
  <td class="p-3">` + html.EscapeString(f.Destination) + `</td>
  <td class="p-3 font-bold text-orange-400">` + html.EscapeString(f.Gate) + `</td>
  <td class="p-3"><span class="p-1.5 text-xs font-medium uppercase tracking-wider text-` + f.StatusColor + `-300 bg-` + f.StatusColor + `-800/50 rounded-lg">` + html.EscapeString(f.Status) + `</span></td>
</tr>`)
	}
	return b.String()
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	rows := a.flightRows()
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">Airport Flight Board</h1>
<table class="mt-4 w-full">
  <thead><tr><th>Flight</th><th>Destination</th><th>Gate</th><th>Status</th></tr></thead>
  <tbody id="departures-body" hx-get="api/flights" hx-trigger="every 5s">` + rows + `</tbody>
</table>
<div id="flight-details-content" class="mt-4"></div>
<button hx-post="api/announce-gate-change" hx-swap="none">Announce gate change</button>
<form hx-post="api/scan-pass" hx-target="#scan-result" class="mt-4">
  <select name="ticket_type">
    <option value="FirstClass">First Class</option>
    <option value="Standard">Standard</option>
  </select>
  <button type="submit">Scan boarding pass</button>
</form>
<div id="scan-result"></div>`
	render.Page(w, r, "Airport Flight Board", page)
}

func (a *App) handleFlights(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	rows := a.flightRows()
	a.mu.Unlock()
	render.Fragment(w, rows)
}

// handleAnnounceGateChange carries no body; the HX-Trigger header fires
// the urgentUpdate event on the client.
func (a *App) handleAnnounceGateChange(w http.ResponseWriter, _ *http.Request) {
	htmx.Trigger(w, "urgentUpdate")
	render.Empty(w)
}

func (a *App) handleScanPass(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, "<p>Could not read the boarding pass.</p>")
		return
	}
	if r.PostFormValue("ticket_type") == "Standard" {
		htmx.Redirect(w, "/labs/airport/access-denied")
		render.Empty(w)
		return
	}
	render.Fragment(w, "Access Granted")
}

func (a *App) handleFlightDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "flightID")

	a.mu.Lock()
	f, ok := a.flights[id]
	a.mu.Unlock()
	if !ok {
		render.FragmentStatus(w, http.StatusNotFound, "<p>Flight not found.</p>")
		return
	}

	render.Page(w, r, "Flight "+f.ID, `<div id="flight-details-content" class="bg-gray-900/50 p-4 rounded-lg border border-gray-700 space-y-3">
  <h4 class="text-xl font-bold text-white">Flight `+f.ID+` Details</h4>
  <div class="text-gray-400">
    <p><span class="font-semibold text-gray-300">Destination:</span> `+html.EscapeString(f.Destination)+`</p>
    <p><span class="font-semibold text-gray-300">Airline:</span> `+html.EscapeString(f.Airline)+`</p>
    <p><span class="font-semibold text-gray-300">Aircraft:</span> `+html.EscapeString(f.Aircraft)+`</p>
    <p><span class="font-semibold text-gray-300">Status:</span> <span class="text-`+f.StatusColor+`-400">`+html.EscapeString(f.Status)+`</span></p>
    <p><span class="font-semibold text-gray-300">Gate:</span> <span class="text-orange-400">`+html.EscapeString(f.Gate)+`</span></p>
  </div>
</div>`)
}

func (a *App) handleAccessDenied(w http.ResponseWriter, r *http.Request) {
	render.Page(w, r, "Access Denied", `<div class="bg-red-900/50 border border-red-700 rounded-lg p-8 text-center">
  <h1 class="text-5xl font-extrabold text-red-500">ACCESS DENIED</h1>
  <p class="mt-4 text-lg text-red-300">Standard tickets do not grant access to this area. You have been redirected.</p>
</div>`)
}
