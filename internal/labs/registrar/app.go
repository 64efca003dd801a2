// Package registrar is the university records lesson: registration
// outcomes, authorization failures, and an HX-Redirect to the tuition
// payment page.
package registrar

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

// App holds the registrar lesson. Outcomes are fixed per endpoint.
type App struct{}

// New returns the registrar app.
func New() *App {
	return &App{}
}

// Routes mounts the registrar endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Post("/register/success", a.handleRegisterSuccess)
	r.Post("/register/full", a.handleRegisterFull)
	r.Get("/records/grades/forbidden", a.handleGradesForbidden)
	r.Get("/records/transcript/not-found", a.handleTranscriptNotFound)
	r.Get("/records/grades/payment-due", a.handleGradesPaymentDue)
	r.Get("/pay-tuition", a.handlePayTuition)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">University Registrar</h1>
<div class="grid gap-2 mt-4">
  <button hx-post="register/success" hx-target="#main-content">Register for BIOL-101</button>
  <button hx-post="register/full" hx-target="#registration-error">Register for CHEM-301 (full)</button>
  <button hx-get="records/grades/forbidden" hx-target="#records-result">View another student's grades</button>
  <button hx-get="records/transcript/not-found" hx-target="#records-result">Request a missing transcript</button>
  <button hx-get="records/grades/payment-due">View my grades (balance due)</button>
</div>
<div id="main-content" class="mt-4"></div>
<div id="registration-error" class="mt-2"></div>
<div id="records-result" class="mt-2"></div>`
	render.Page(w, r, "University Registrar", page)
}

func (a *App) handleRegisterSuccess(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, `<div id="main-content-after-success" data-testid="main-content-after-success" class="bg-gray-800 border border-gray-700 p-6 rounded-xl shadow-lg">
  <h2 class="text-2xl font-semibold mb-4 text-green-400">My Fall Schedule</h2>
  <p class="text-gray-400 mb-4">You have successfully registered for the following course:</p>
  <ul class="list-disc list-inside bg-gray-900 p-4 rounded-lg">
    <li class="text-lg">BIOL-101: Introduction to Biology</li>
  </ul>
</div>`)
}

// handleRegisterFull answers 409: the request is well-formed but the
// course roster conflicts with it.
func (a *App) handleRegisterFull(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusConflict, `<div data-testid="registration-error-target-after-action" class="min-h-[2rem] p-2 bg-red-900/50 border border-red-500 rounded-md">
  <p class="text-red-400 font-semibold">Error: Course is full.</p>
</div>`)
}

func (a *App) handleGradesForbidden(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusForbidden, `<div data-testid="records-result-target-after-403" class="bg-red-900/50 border border-red-500 rounded-lg p-4 min-h-[6rem]">
  <h4 class="font-bold text-red-300">Access Denied (403 Forbidden)</h4>
  <p class="text-red-400">You do not have permission to view grades for this student.</p>
</div>`)
}

func (a *App) handleTranscriptNotFound(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusNotFound, `<div data-testid="records-result-target-after-404" class="bg-red-900/50 border border-red-500 rounded-lg p-4 min-h-[6rem]">
  <h4 class="font-bold text-red-300">Not Found (404)</h4>
  <p class="text-red-400">The requested transcript for the specified student ID does not exist.</p>
</div>`)
}

func (a *App) handleGradesPaymentDue(w http.ResponseWriter, _ *http.Request) {
	htmx.Redirect(w, "/labs/registrar/pay-tuition")
	render.Empty(w)
}

func (a *App) handlePayTuition(w http.ResponseWriter, r *http.Request) {
	render.Page(w, r, "Tuition Payment", `<div id="main-content-after-redirect" data-testid="main-content-after-redirect" class="bg-gray-800 border-2 border-yellow-500 p-6 rounded-xl shadow-lg">
  <h2 class="text-2xl font-semibold mb-4 text-yellow-400">Tuition Payment Required</h2>
  <p class="text-gray-400 mb-4">Access to student records is blocked until your outstanding tuition balance is paid. Please clear your balance to proceed.</p>
  <div class="mt-6">
    <button class="w-full sm:w-auto bg-green-600 hover:bg-green-700 text-white font-bold py-3 px-6 rounded-lg text-lg">Pay Tuition Now</button>
  </div>
</div>`)
}
