package vending

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestItemInfo(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/item-info/a1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A1: Crispy Chips")
	assert.Contains(t, w.Body.String(), "Calories: 150, Sodium: 200mg")
}

func TestItemInfoUnknownSlot(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/item-info/Z9")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Item not found")
}

func TestAddCreditAccumulatesAndUpdatesDisplay(t *testing.T) {
	app := New()
	h := labtest.Mount(app)

	w := labtest.PostForm(h, "/add-credit", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "$0.25")
	assert.Contains(t, w.Body.String(), `hx-swap-oob="innerHTML"`)

	labtest.PostForm(h, "/add-credit", nil)
	assert.Equal(t, 50, app.CreditCents())
}

func TestAddCreditEnablesAffordableItems(t *testing.T) {
	h := labtest.Mount(New())

	// Two quarters cover the candy bar at $0.50.
	labtest.PostForm(h, "/add-credit", nil)
	w := labtest.PostForm(h, "/add-credit", nil)

	body := w.Body.String()
	assert.Contains(t, body, "item_selection_button-D4-enabled")
	assert.Contains(t, body, "item_selection_button-A1-unaffordable")
	assert.Contains(t, body, "item_selection_button-B2-sold-out")
}

func TestPurchaseSoldOutReturns404(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/purchase/B2", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SOLD OUT")
	assert.Contains(t, w.Body.String(), "Item B2 is unavailable.")
}

func TestPurchaseWithoutCreditReturns402(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/purchase/D4", nil)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "INSUFFICIENT FUNDS")
	assert.Contains(t, w.Body.String(), "Required: $0.50, You have: $0.00")
}

func TestPurchaseDispensesAndDeductsCredit(t *testing.T) {
	app := New()
	h := labtest.Mount(app)

	labtest.PostForm(h, "/add-credit", nil)
	labtest.PostForm(h, "/add-credit", nil)
	w := labtest.PostForm(h, "/purchase/d4", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "$0.00")
	assert.Contains(t, body, `hx-swap-oob="beforeend"`)
	assert.Contains(t, body, "Candy Bar")

	assert.Equal(t, 0, app.CreditCents())
	assert.Equal(t, []string{"Candy Bar"}, app.Retrieved())
}

func TestIndexShowsZeroCreditAndGrid(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.DoPage(h, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "$0.00")
	assert.Contains(t, w.Body.String(), "item-grid-container")
}
