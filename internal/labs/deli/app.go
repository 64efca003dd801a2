// Package deli is the order pad lesson: a single POST endpoint that grows
// an in-memory order and re-renders the whole summary fragment.
package deli

import (
	"html"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// OrderItem is one line of the running order.
type OrderItem struct {
	Name     string
	Quantity int
}

// App holds the deli lesson state.
type App struct {
	mu    sync.Mutex
	order []OrderItem
}

// New returns a deli app with an empty order.
func New() *App {
	return &App{}
}

// Order returns a snapshot of the current order.
func (a *App) Order() []OrderItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]OrderItem, len(a.order))
	copy(out, a.order)
	return out
}

// Routes mounts the deli endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Post("/add-item", a.handleAddItem)
}

func orderSummaryFragment(order []OrderItem) string {
	var b strings.Builder
	b.WriteString(`<div id="order-summary" data-testid="order-summary">`)
	if len(order) == 0 {
		b.WriteString(`<p class="text-slate-400">Your order is empty.</p>`)
	} else {
		b.WriteString("<ul>")
		for _, item := range order {
			b.WriteString(`<li>` + html.EscapeString(item.Name) + ` <span class="font-mono">x` + strconv.Itoa(item.Quantity) + `</span></li>`)
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</div>")
	return b.String()
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">Deli Order Pad</h1>
<form hx-post="add-item" hx-target="#order-summary" hx-swap="outerHTML" class="mt-4">
  <input type="text" name="item" placeholder="Item" required>
  <input type="number" name="quantity" value="1" min="1">
  <button type="submit">Add to order</button>
</form>
` + orderSummaryFragment(a.Order())
	render.Page(w, r, "Deli Order Pad", page)
}

// handleAddItem merges quantities for repeated item names so the order
// never lists the same item twice.
func (a *App) handleAddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Could not read the order form.</p>`)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("item"))
	if name == "" {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">An item name is required.</p>`)
		return
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("quantity")))
	if err != nil || quantity < 1 {
		render.FragmentStatus(w, http.StatusUnprocessableEntity, `<p class="text-red-400">Quantity must be a positive whole number.</p>`)
		return
	}

	a.mu.Lock()
	merged := false
	for i := range a.order {
		if a.order[i].Name == name {
			a.order[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		a.order = append(a.order, OrderItem{Name: name, Quantity: quantity})
	}
	snapshot := make([]OrderItem, len(a.order))
	copy(snapshot, a.order)
	a.mu.Unlock()

	render.Fragment(w, orderSummaryFragment(snapshot))
}
