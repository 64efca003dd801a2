// Package atm is the cash-machine lesson: card insertion gates the
// PIN pad, withdrawals check funds, and an unauthenticated balance
// check bounces the session home via HX-Redirect.
package atm

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/web/render"
)

const startingBalanceCents = 100000

// App models the machine's session state. Money is held in cents.
type App struct {
	mu            sync.Mutex
	cardInserted  bool
	authenticated bool
	balanceCents  int64
}

func New() *App { return &App{balanceCents: startingBalanceCents} }

func dollars(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// Routes mounts the ATM endpoints.
func (a *App) Routes(r chi.Router) {
	r.Get("/", a.handleIndex)
	r.Post("/login", a.handleLogin)
	r.Post("/withdraw", a.handleWithdraw)
	r.Get("/balance", a.handleBalance)
	r.Get("/home", a.handleHome)
	r.Post("/simulation/insert-card", a.handleInsertCard)
	r.Post("/simulation/remove-card", a.handleRemoveCard)
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := `<h1 class="text-2xl font-bold">First Street ATM</h1>
<div id="atm-screen" class="mt-4 p-6 bg-gray-900 rounded-lg">
  <p class="text-xl text-gray-400">Please insert your card and enter your PIN using the panels below.</p>
</div>
<button hx-post="simulation/insert-card" hx-target="#atm-screen">Insert card</button>
<button hx-post="simulation/remove-card" hx-target="#atm-screen">Remove card</button>
<form hx-post="login" hx-target="#atm-screen">
  <input type="password" name="pin" placeholder="PIN">
  <button type="submit">Enter PIN</button>
</form>
<form hx-post="withdraw" hx-target="#atm-screen">
  <input type="text" name="amount" placeholder="Amount">
  <button type="submit">Withdraw</button>
</form>
<button hx-get="balance" hx-target="#atm-screen">Check balance</button>`
	render.Page(w, r, "First Street ATM", page)
}

// handleLogin authenticates any PIN, but only once a card is in the
// slot. The 402 on a missing card is part of the machine's contract.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusBadRequest, "<p>Could not read the PIN pad.</p>")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.cardInserted {
		render.FragmentStatus(w, http.StatusPaymentRequired, `<div>
  <p class="text-xl font-bold text-red-400">Error: No Card Inserted</p>
  <p class="text-gray-300 mt-2">Please simulate 'Insert Card' before entering a PIN.</p>
</div>`)
		return
	}

	a.authenticated = true
	render.Fragment(w, `<div>
  <p class="text-xl font-bold text-green-400">Authentication Successful!</p>
  <p class="text-gray-300 mt-2">Current Balance: `+dollars(a.balanceCents)+`</p>
</div>`)
}

func (a *App) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render.FragmentStatus(w, http.StatusBadRequest, "<p>Invalid amount entered.</p>")
		return
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(r.PostFormValue("amount")), 64)
	if err != nil || amount < 0 {
		render.FragmentStatus(w, http.StatusBadRequest, "<p>Invalid amount entered.</p>")
		return
	}
	amountCents := int64(math.Round(amount * 100))

	a.mu.Lock()
	defer a.mu.Unlock()

	if amountCents > a.balanceCents {
		render.FragmentStatus(w, http.StatusForbidden, `<div>
  <p class="text-xl font-bold text-red-400">Transaction Failed: Insufficient Funds</p>
  <p class="text-gray-300 mt-2">Attempted to withdraw `+dollars(amountCents)+`, but balance is only `+dollars(a.balanceCents)+`.</p>
</div>`)
		return
	}

	a.balanceCents -= amountCents
	render.Fragment(w, `<div>
  <p class="text-xl font-bold text-green-400">Withdrawal Successful!</p>
  <p class="text-gray-300 mt-2">New Balance: `+dollars(a.balanceCents)+`</p>
</div>`)
}

// handleBalance shows the balance for an authenticated session and
// redirects a stale one back to the home screen.
func (a *App) handleBalance(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authenticated {
		htmx.Redirect(w, "/labs/atm/home")
		render.Empty(w)
		return
	}

	render.Fragment(w, `<div>
  <p class="text-xl font-bold text-blue-400">Account Balance</p>
  <p class="text-gray-300 mt-2">Your current balance is: `+dollars(a.balanceCents)+`</p>
</div>`)
}

func (a *App) handleHome(w http.ResponseWriter, r *http.Request) {
	render.Page(w, r, "First Street ATM", `<p class="text-xl text-gray-400">Please insert your card and enter your PIN using the panels below.</p>`)
}

func (a *App) handleInsertCard(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	a.cardInserted = true
	// A fresh card still needs its PIN.
	a.authenticated = false
	a.mu.Unlock()
	render.Fragment(w, "<p>Card Inserted. Please enter PIN.</p>")
}

func (a *App) handleRemoveCard(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	a.cardInserted = false
	a.authenticated = false
	a.balanceCents = startingBalanceCents
	a.mu.Unlock()
	render.Fragment(w, "<p>Card removed. Thank you.</p>")
}
