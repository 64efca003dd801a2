// Package lego is the LEGO builder lesson: static part fragments
// demonstrating targeted swaps, appends, and hx-select extraction from a
// full document.
package lego

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// App holds the lego lesson. All parts are fixed fragments.
type App struct{}

// New returns the lego app.
func New() *App {
	return &App{}
}

// Routes mounts the lego endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/lego/pilot", a.handlePilot)
	r.Get("/lego/window-wall", a.handleWindowWall)
	r.Get("/lego/top-brick", a.handleTopBrick)
	r.Get("/lego/tree", a.handleTree)
	r.Get("/lego/castle-instructions", a.handleCastleInstructions)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">LEGO Builder</h1>
<div id="cockpit" class="mt-4">Empty cockpit</div>
<div id="wall-section-1" data-testid="wall-section-1-initial" class="w-40 h-20 bg-yellow-500">Solid Wall</div>
<div id="spaceship-top"></div>
<div id="baseplate"></div>
<div class="grid gap-2 mt-4">
  <button hx-get="lego/pilot" hx-target="#cockpit">Seat the pilot</button>
  <button hx-get="lego/window-wall" hx-target="#wall-section-1" hx-swap="outerHTML">Swap in the window wall</button>
  <button hx-get="lego/top-brick" hx-target="#spaceship-top" hx-swap="beforeend">Stack a brick</button>
  <button hx-get="lego/tree" hx-target="#baseplate" hx-swap="beforeend">Plant a tree</button>
  <button hx-get="lego/castle-instructions" hx-target="#baseplate" hx-select="#drawbridge-piece" hx-swap="beforeend">Borrow the drawbridge</button>
</div>`
	render.Page(w, r, "LEGO Builder", page)
}

func (a *App) handlePilot(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, "<span>LEGO Pilot</span>")
}

func (a *App) handleWindowWall(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div id="wall-section-1" data-testid="wall-section-1-final" class="w-40 h-20 bg-yellow-500 border-2 border-gray-900 flex items-center justify-center text-black font-semibold rounded-sm relative">
  Window Wall
  <div class="absolute w-10 h-10 bg-cyan-300 rounded border-2 border-gray-900"></div>
</div>`)
}

func (a *App) handleTopBrick(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div class="w-10 h-10 bg-red-500 border-2 border-gray-900 flex items-center justify-center text-white text-xs font-semibold rounded-sm">Brick</div>`)
}

func (a *App) handleTree(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div data-testid="tree" class="flex flex-col items-center">
  <div class="w-16 h-20 bg-green-700 rounded-t-full border-2 border-gray-900"></div>
  <div class="w-6 h-10 bg-amber-800 border-2 border-gray-900"></div>
</div>`)
}

// handleCastleInstructions serves a complete document; the client pulls
// out #drawbridge-piece with hx-select.
func (a *App) handleCastleInstructions(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<html>
  <body>
    <h1>Full Castle Parts List</h1>
    <div id="castle-parts">
      <div id="tower-piece">... a tall tower ...</div>
      <div id="drawbridge-piece" data-testid="source-drawbridge">
        ... a wooden drawbridge ...
      </div>
      <div id="gate-piece">... a large gate ...</div>
    </div>
  </body>
</html>`)
}
