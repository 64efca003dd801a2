// Package newsroom is the event-driven lesson: a cycling headline
// ticker, an HX-Trigger broadcast, and a coordinated out-of-band
// sidebar update.
package newsroom

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

var headlines = []string{
	"Tech Giant Announces Breakthrough in AI.",
	"Global Markets Rally on Positive Economic News.",
	"New Study Reveals Surprising Health Benefits of Chocolate.",
	"Local Sports Team Wins Championship in Dramatic Finale.",
}

const breakingStory = "A sudden solar flare has caused temporary disruptions to satellite communications worldwide. Experts are monitoring the situation closely."

// App cycles headlines and accumulates sidebar alerts.
type App struct {
	mu            sync.Mutex
	nextHeadline  int
	sidebarAlerts []string
	now           func() time.Time
}

func New() *App {
	a := &App{now: time.Now}
	a.sidebarAlerts = []string{a.alertLine("System Initialized")}
	return a
}

func (a *App) alertLine(text string) string {
	return `<li class="text-gray-300"><span class="font-mono text-cyan-400">` +
		a.now().Format("15:04:05") + `</span> - ` + text + `</li>`
}

// Routes mounts the newsroom endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/api/headlines", a.handleHeadlines)
	r.Post("/api/broadcast/alert", a.handleBroadcastAlert)
	r.Get("/api/story/breaking", a.handleBreakingStory)
	r.Post("/api/broadcast/coordinated-update", a.handleCoordinatedUpdate)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	alerts := strings.Join(a.sidebarAlerts, "")
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">The Newsroom Floor</h1>
<div id="news-ticker" hx-get="api/headlines" hx-trigger="every 5s" class="mt-4"></div>
<button hx-post="api/broadcast/alert" hx-swap="none">Broadcast alert</button>
<button hx-post="api/broadcast/coordinated-update" hx-target="#main-story">Push coordinated update</button>
<div id="main-story" hx-get="api/story/breaking" hx-trigger="newBreakingNews from:body" class="mt-4"></div>
<aside class="mt-4">
  <h2 class="font-semibold">Alerts</h2>
  <ul id="alerts-sidebar-list" class="list-disc list-inside space-y-2 text-sm">` + alerts + `</ul>
</aside>`
	render.Page(w, r, "The Newsroom Floor", page)
}

// handleHeadlines serves the next ticker headline, wrapping around the
// fixed rotation.
func (a *App) handleHeadlines(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	headline := headlines[a.nextHeadline]
	a.nextHeadline = (a.nextHeadline + 1) % len(headlines)
	a.mu.Unlock()

	render.Fragment(w, `<p class="text-sm">`+headline+`</p>`)
}

// handleBroadcastAlert returns no markup; the HX-Trigger header fans
// the event out to listeners on the page.
func (a *App) handleBroadcastAlert(w http.ResponseWriter, _ *http.Request) {
	htmx.Trigger(w, "newBreakingNews")
	render.Empty(w)
}

func breakingStoryFragment() string {
	return `<h3 class="text-xl font-bold text-red-500">BREAKING NEWS</h3>
<p class="mt-2 text-gray-300">` + breakingStory + `</p>`
}

func (a *App) handleBreakingStory(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, breakingStoryFragment())
}

// handleCoordinatedUpdate answers with the main story plus an
// out-of-band rebuild of the sidebar list, so one response updates two
// page regions.
func (a *App) handleCoordinatedUpdate(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	a.sidebarAlerts = append(a.sidebarAlerts, a.alertLine("Coordinated Update Received"))
	alerts := strings.Join(a.sidebarAlerts, "")
	a.mu.Unlock()

	oob := `<ul id="alerts-sidebar-list" hx-swap-oob="true" class="list-disc list-inside space-y-2 text-sm">` + alerts + `</ul>`
	render.Fragment(w, breakingStoryFragment()+"\n"+oob)
}
