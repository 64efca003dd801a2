// Package boutique is the storefront lesson: tabbed product lists
// swapped by category plus a one-click checkout.
package boutique

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

const tShirtsFragment = `<div class="grid grid-cols-1 sm:grid-cols-2 gap-4">
  <div class="bg-gray-700 p-4 rounded-lg shadow">
    <h4 class="text-xl font-bold text-gray-100">HTMX Logo Tee</h4>
    <p class="text-gray-400 mt-1">$28.00</p>
  </div>
  <div class="bg-gray-700 p-4 rounded-lg shadow">
    <h4 class="text-xl font-bold text-gray-100">&quot;I Use Arch&quot; Tee</h4>
    <p class="text-gray-400 mt-1">$32.00</p>
  </div>
</div>`

const hatsFragment = `<div class="grid grid-cols-1 sm:grid-cols-2 gap-4">
  <div class="bg-gray-700 p-4 rounded-lg shadow">
    <h4 class="text-xl font-bold text-gray-100">Classic Snapback</h4>
    <p class="text-gray-400 mt-1">$25.00</p>
  </div>
  <div class="bg-gray-700 p-4 rounded-lg shadow">
    <h4 class="text-xl font-bold text-gray-100">Winter Beanie</h4>
    <p class="text-gray-400 mt-1">$22.00</p>
  </div>
</div>`

const checkoutSuccessFragment = `<p class="text-green-400 font-semibold">✓ Order placed successfully!</p>`

// App is stateless; the catalog is fixed.
type App struct{}

func New() *App { return &App{} }

// Routes mounts the boutique endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/products/t-shirts", a.handleTShirts)
	r.Get("/products/hats", a.handleHats)
	r.Post("/checkout/process", a.handleCheckout)
}

// handleIndex renders the storefront with the T-shirt list already in
// place so the first paint needs no extra request.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">The Corner Boutique</h1>
<nav class="mt-4 space-x-2">
  <button hx-get="products/t-shirts" hx-target="#product-shelf">T-Shirts</button>
  <button hx-get="products/hats" hx-target="#product-shelf">Hats</button>
</nav>
<div id="product-shelf" class="mt-4">` + tShirtsFragment + `</div>
<button hx-post="checkout/process" hx-target="#checkout-status" class="mt-4">Checkout</button>
<div id="checkout-status" class="mt-2"></div>`
	render.Page(w, r, "The Corner Boutique", page)
}

func (a *App) handleTShirts(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, tShirtsFragment)
}

func (a *App) handleHats(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, hatsFragment)
}

func (a *App) handleCheckout(w http.ResponseWriter, _ *http.Request) {
	render.Fragment(w, checkoutSuccessFragment)
}
