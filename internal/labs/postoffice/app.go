// Package postoffice is the mail-forwarding lesson: one form posted to
// three endpoints that answer with success, 404, and 500 fragments so
// students can watch error swaps.
package postoffice

import (
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// App is stateless; every response depends only on the submitted form.
type App struct{}

func New() *App { return &App{} }

// Routes mounts the post office endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Post("/process-address-change", a.handleAddressChange)
	r.Post("/process-invalid-zip", a.handleInvalidZip)
	r.Post("/simulate-server-failure", a.handleServerFailure)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">Mail Forwarding Desk</h1>
<form hx-post="process-address-change" hx-target="#clerk-response" class="mt-4 space-y-2">
  <input type="text" name="customer-id" value="CUST-042">
  <input type="text" name="service_type" value="Forwarding">
  <input type="text" name="street" placeholder="New street">
  <input type="text" name="zip_code" placeholder="Zip code">
  <button type="submit">Submit change of address</button>
</form>
<button hx-post="process-invalid-zip" hx-target="#clerk-response">Try an unknown zip</button>
<button hx-post="simulate-server-failure" hx-target="#clerk-response">Jam the sorting machine</button>
<div id="clerk-response" class="mt-4"></div>`
	render.Page(w, r, "Mail Forwarding Desk", page)
}

func (a *App) handleAddressChange(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the address form.</p>`)
		return
	}
	street := strings.TrimSpace(r.PostFormValue("street"))
	zip := strings.TrimSpace(r.PostFormValue("zip_code"))
	customerID := strings.TrimSpace(r.PostFormValue("customer-id"))
	serviceType := strings.TrimSpace(r.PostFormValue("service_type"))
	if street == "" || zip == "" || customerID == "" || serviceType == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">All address fields are required.</p>`)
		return
	}

	render.Fragment(w, `<div class="p-4 bg-green-900/50 border border-green-700 rounded-md text-green-300">
  <h4 class="font-bold">Success!</h4>
  <p>Request processed for customer `+html.EscapeString(customerID)+` (Service: `+html.EscapeString(serviceType)+`).</p>
  <p>Address successfully updated to `+html.EscapeString(street)+`, `+html.EscapeString(zip)+`.</p>
</div>`)
}

func (a *App) handleInvalidZip(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusNotFound, `<div class="p-4 bg-red-900/50 border border-red-700 rounded-md text-red-300">
  <h4 class="font-bold">Error: Not Found (404)</h4>
  <p>The destination zip code could not be found. Please check the address and try again.</p>
</div>`)
}

func (a *App) handleServerFailure(w http.ResponseWriter, _ *http.Request) {
	render.FragmentStatus(w, http.StatusInternalServerError, `<div class="p-4 bg-yellow-900/50 border border-yellow-700 rounded-md text-yellow-300">
  <h4 class="font-bold">Error: Internal Server Error (500)</h4>
  <p>The mail sorting machine is offline. We are unable to process your request at this time. Please try again later.</p>
</div>`)
}
