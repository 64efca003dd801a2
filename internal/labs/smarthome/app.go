// Package smarthome is the smart home hub lesson: per-device fragments,
// a combined status refresh, a toggle, and a polled thermometer.
package smarthome

import (
	"html"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// App holds the device state for the hub.
type App struct {
	mu          sync.Mutex
	playlist    string
	lightOn     bool
	temperature int
}

// New returns a hub with the default device state.
func New() *App {
	return &App{
		playlist:    "90s Rock Anthems",
		lightOn:     true,
		temperature: 22,
	}
}

// SetTemperature updates the ambient reading reported by polling.
func (a *App) SetTemperature(value int) {
	a.mu.Lock()
	a.temperature = value
	a.mu.Unlock()
}

// Routes mounts the hub endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/all-status", a.handleAllStatus)
	r.Post("/playlist", a.handleSetPlaylist)
	r.Post("/toggle-light", a.handleToggleLight)
	r.Get("/temperature", a.handleTemperature)
}

func speakerFragment(playlist string) string {
	return `<div id="living-room-speaker" data-testid="living-room-speaker-after" class="bg-gray-900 p-4 rounded-lg flex items-center justify-between ring-2 ring-green-500">
  <div>
    <p class="font-bold text-lg">Living Room Speaker</p>
    <p class="text-gray-400">Playlist: <span class="font-mono text-green-300">` + html.EscapeString(playlist) + `</span></p>
  </div>
</div>`
}

func lightFragment(on bool) string {
	ring, statusColor, status := "ring-1 ring-gray-600", "text-red-400", "Off"
	if on {
		ring, statusColor, status = "ring-2 ring-yellow-400", "text-green-400", "On"
	}
	return `<div id="kitchen-light" data-testid="kitchen-light-after" class="bg-gray-900 p-4 rounded-lg flex items-center justify-between ` + ring + `">
  <div>
    <p class="font-bold text-lg">Kitchen Light</p>
    <p class="text-gray-400">Status: <span class="font-bold ` + statusColor + `">` + status + `</span></p>
  </div>
</div>`
}

func temperatureFragment(value int) string {
	return `<div id="ambient-temperature" data-testid="ambient-temperature-after" class="bg-gray-900 p-4 rounded-lg flex items-center justify-between ring-2 ring-cyan-500">
  <div>
    <p class="font-bold text-lg">Ambient Temperature</p>
    <p class="text-2xl font-mono text-cyan-300">` + strconv.Itoa(value) + `°C</p>
  </div>
</div>`
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	playlist, lightOn, temp := a.playlist, a.lightOn, a.temperature
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">Smart Home Hub</h1>
<div id="devices" class="grid gap-4 mt-4">` +
		speakerFragment(playlist) + lightFragment(lightOn) + temperatureFragment(temp) + `</div>
<form hx-post="playlist" hx-target="#living-room-speaker" hx-swap="outerHTML" class="mt-4">
  <input type="text" name="playlistName" placeholder="Playlist name" required>
  <button type="submit">Start playlist</button>
</form>
<button hx-post="toggle-light" hx-target="#kitchen-light" hx-swap="outerHTML">Toggle kitchen light</button>
<button hx-get="all-status" hx-target="#devices" hx-swap="innerHTML">Refresh all devices</button>`
	render.Page(w, r, "Smart Home Hub", page)
}

// handleAllStatus concatenates every device fragment so a single swap
// refreshes the whole dashboard.
func (a *App) handleAllStatus(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	playlist, lightOn, temp := a.playlist, a.lightOn, a.temperature
	a.mu.Unlock()
	render.Fragment(w, speakerFragment(playlist)+lightFragment(lightOn)+temperatureFragment(temp))
}

func (a *App) handleSetPlaylist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the playlist form.</p>`)
		return
	}
	playlist := strings.TrimSpace(r.PostFormValue("playlistName"))
	if playlist == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">A playlist name is required.</p>`)
		return
	}

	a.mu.Lock()
	a.playlist = playlist
	a.mu.Unlock()

	render.Fragment(w, speakerFragment(playlist))
}

func (a *App) handleToggleLight(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	a.lightOn = !a.lightOn
	on := a.lightOn
	a.mu.Unlock()

	render.Fragment(w, lightFragment(on))
}

func (a *App) handleTemperature(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	temp := a.temperature
	a.mu.Unlock()
	render.Fragment(w, temperatureFragment(temp))
}
