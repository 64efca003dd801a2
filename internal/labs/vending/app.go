// Package vending is the vending machine lesson: item info lookups,
// credit accumulation with out-of-band display updates, and purchases
// with 402/404 failure fragments.
package vending

import (
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/web/render"
)

// Item is one vending machine slot. Prices are kept in cents so credit
// arithmetic stays exact.
type Item struct {
	Name       string
	PriceCents int
	Calories   int
	SodiumMg   int
	Stock      int
}

// App holds the vending machine state.
type App struct {
	mu          sync.Mutex
	items       map[string]*Item
	creditCents int
	retrieved   []string
}

// New returns a vending machine with the standard four slots and no
// credit. Slot B2 starts sold out.
func New() *App {
	return &App{
		items: map[string]*Item{
			"A1": {Name: "Crispy Chips", PriceCents: 75, Calories: 150, SodiumMg: 200, Stock: 5},
			"B2": {Name: "NutriBar", PriceCents: 125, Calories: 200, SodiumMg: 110, Stock: 0},
			"C3": {Name: "Soda Pop", PriceCents: 100, Calories: 180, SodiumMg: 30, Stock: 8},
			"D4": {Name: "Candy Bar", PriceCents: 50, Calories: 250, SodiumMg: 80, Stock: 10},
		},
	}
}

// CreditCents returns the current balance.
func (a *App) CreditCents() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.creditCents
}

// Retrieved returns the names of dispensed items in purchase order.
func (a *App) Retrieved() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.retrieved))
	copy(out, a.retrieved)
	return out
}

// Routes mounts the vending endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Get("/item-info/{itemID}", a.handleItemInfo)
	r.Post("/add-credit", a.handleAddCredit)
	r.Post("/purchase/{itemID}", a.handlePurchase)
}

func dollars(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// itemGridFragment re-renders every slot; button state depends on stock
// and on whether the current credit covers the price.
func (a *App) itemGridFragment(creditCents int) string {
	ids := make([]string, 0, len(a.items))
	for id := range a.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(`<div class="mt-4 grid grid-cols-2 sm:grid-cols-4 gap-4" id="item-grid-container">`)
	for _, id := range ids {
		item := a.items[id]
		var button string
		switch {
		case item.Stock <= 0:
			button = `<button class="w-full bg-red-800 text-gray-400 font-bold py-2 px-4 rounded-lg cursor-not-allowed" data-testid="item_selection_button-` + id + `-sold-out">SOLD OUT</button>`
		case creditCents >= item.PriceCents:
			button = `<button class="w-full bg-indigo-600 hover:bg-indigo-700 text-white font-bold py-2 px-4 rounded-lg" hx-post="purchase/` + id + `" hx-swap="none" data-testid="item_selection_button-` + id + `-enabled">Purchase</button>`
		default:
			button = `<button class="w-full bg-gray-600 text-gray-400 font-bold py-2 px-4 rounded-lg cursor-not-allowed" data-testid="item_selection_button-` + id + `-unaffordable">Purchase</button>`
		}
		b.WriteString(`<div hx-get="item-info/` + id + `" hx-target="#display-screen-target" hx-swap="innerHTML" class="bg-gray-700 p-4 rounded-lg text-center cursor-pointer hover:bg-gray-600" data-testid="item_info_button-` + id + `">
  <p class="font-bold">` + id + `: ` + html.EscapeString(item.Name) + `</p>
  <p class="text-sm text-gray-400">` + dollars(item.PriceCents) + `</p>
  ` + button + `
</div>`)
	}
	b.WriteString("</div>")
	return b.String()
}

func creditOOBFragment(creditCents int) string {
	return `<div id="credit-display" hx-swap-oob="innerHTML" class="bg-gray-900 p-3 rounded-md text-2xl font-mono text-green-400 text-center">` + dollars(creditCents) + `</div>`
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	credit := a.creditCents
	grid := a.itemGridFragment(credit)
	a.mu.Unlock()

	page := `<h1 class="text-2xl font-bold">Vending Machine</h1>
<div id="credit-display" class="bg-gray-900 p-3 rounded-md text-2xl font-mono text-green-400 text-center">` + dollars(credit) + `</div>
<button hx-post="add-credit" hx-target="#item-grid-container" hx-swap="outerHTML">Insert quarter</button>
<div id="display-screen-target" class="mt-4 min-h-[3rem]"></div>` + grid + `
<div id="retrieval-bin-target" class="mt-4"></div>`
	render.Page(w, r, "Vending Machine", page)
}

func (a *App) handleItemInfo(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(chi.URLParam(r, "itemID"))

	a.mu.Lock()
	item, ok := a.items[id]
	a.mu.Unlock()
	if !ok {
		render.FragmentStatus(w, http.StatusNotFound, "<p>Item not found</p>")
		return
	}

	render.Fragment(w, `<div class="text-green-300">
  <p class="font-bold text-lg">`+id+`: `+html.EscapeString(item.Name)+`</p>
  <p class="text-sm">Calories: `+fmt.Sprint(item.Calories)+`, Sodium: `+fmt.Sprint(item.SodiumMg)+`mg</p>
</div>`)
}

// handleAddCredit adds a quarter, re-renders the grid for the primary
// swap, and appends an out-of-band credit display update.
func (a *App) handleAddCredit(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	a.creditCents += 25
	credit := a.creditCents
	grid := a.itemGridFragment(credit)
	a.mu.Unlock()

	render.Fragment(w, grid+creditOOBFragment(credit))
}

// handlePurchase responds entirely through out-of-band fragments: the
// credit display and the retrieval bin update, the primary target swaps
// nothing.
func (a *App) handlePurchase(w http.ResponseWriter, r *http.Request) {
	id := strings.ToUpper(chi.URLParam(r, "itemID"))

	a.mu.Lock()
	defer a.mu.Unlock()

	item, ok := a.items[id]
	if !ok || item.Stock <= 0 {
		render.FragmentStatus(w, http.StatusNotFound, `<div class="text-red-500">
  <p class="font-bold text-xl">SOLD OUT</p>
  <p class="text-sm">Item `+html.EscapeString(id)+` is unavailable.</p>
</div>`)
		return
	}
	if a.creditCents < item.PriceCents {
		render.FragmentStatus(w, http.StatusPaymentRequired, `<div class="text-yellow-400">
  <p class="font-bold text-xl">INSUFFICIENT FUNDS</p>
  <p class="text-sm">Required: `+dollars(item.PriceCents)+`, You have: `+dollars(a.creditCents)+`</p>
</div>`)
		return
	}

	a.creditCents -= item.PriceCents
	item.Stock--
	a.retrieved = append(a.retrieved, item.Name)

	retrievalOOB := `<div id="retrieval-bin-target" hx-swap-oob="beforeend">
  <div class="bg-yellow-500 p-4 rounded-lg shadow-inner text-yellow-900 font-bold animate-pulse">` + html.EscapeString(item.Name) + `</div>
</div>`
	render.Fragment(w, creditOOBFragment(a.creditCents)+retrievalOOB)
}
