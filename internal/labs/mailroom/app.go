// Package mailroom is the office-memo lesson: an inbox fed by requests
// that 404, 500, or get rerouted via HX-Redirect.
package mailroom

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

const emptyInboxFragment = `<div data-testid="inbox-initial-state" class="p-4 text-slate-500">Inbox is currently empty.</div>`

// App is stateless; the inbox starts empty on every page load.
type App struct{}

func New() *App { return &App{} }

// Routes mounts the mailroom endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/request-file/missing", a.handleMissingFile)
	r.Get("/request/crashed-server", a.handleCrashedServer)
	r.Get("/mail/old-department", a.handleOldDepartment)
	r.Get("/mail/new-department", a.handleNewDepartment)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">The Corporate Mailroom</h1>
<button hx-get="request-file/missing" hx-target="#inbox">Request a missing file</button>
<button hx-get="request/crashed-server" hx-target="#inbox">Ask the records department</button>
<button hx-get="mail/old-department" hx-target="#inbox">Mail the old department</button>
<div id="inbox" class="mt-4">` + emptyInboxFragment + `</div>`
	render.Page(w, r, "The Corporate Mailroom", page)
}

func (a *App) handleMissingFile(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusNotFound, `<div data-testid="inbox-404-state" class="p-4 bg-yellow-900/50 border border-yellow-700 rounded-md text-yellow-300">
  <p class="font-bold">Memo: Request Failure</p>
  <p>File Not Found. The requested employee file does not exist.</p>
</div>`)
}

func (a *App) handleCrashedServer(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusInternalServerError, `<div class="p-4 bg-red-900/50 border border-red-700 rounded-md text-red-300">
  <p class="font-bold">Server Error</p>
  <p>Records Department is currently offline.</p>
</div>`)
}

// handleOldDepartment answers with an empty 200 carrying HX-Redirect;
// the client reissues the request against the new address.
func (a *App) handleOldDepartment(w http.ResponseWriter, _ *http.Request) {
	htmx.Redirect(w, "/labs/mailroom/mail/new-department")
	render.Empty(w)
}

func (a *App) handleNewDepartment(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div data-testid="inbox-redirect-state" class="p-4 bg-green-900/50 border border-green-700 rounded-md text-green-300">
  <p class="font-bold">Memo: Request Update</p>
  <p>Your request was rerouted and received by the correct department.</p>
</div>`)
}
