package atm

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestLoginWithoutCard(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/login", url.Values{"pin": {"1234"}})

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "Error: No Card Inserted")
}

func TestLoginAfterInsertingCard(t *testing.T) {
	h := labtest.Mount(New())

	labtest.PostForm(h, "/simulation/insert-card", nil)
	w := labtest.PostForm(h, "/login", url.Values{"pin": {"1234"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication Successful!")
	assert.Contains(t, w.Body.String(), "Current Balance: $1000.00")
}

func TestWithdrawUpdatesBalance(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/withdraw", url.Values{"amount": {"250.50"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Withdrawal Successful!")
	assert.Contains(t, w.Body.String(), "New Balance: $749.50")
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/withdraw", url.Values{"amount": {"2000"}})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Transaction Failed: Insufficient Funds")
	assert.Contains(t, w.Body.String(), "Attempted to withdraw $2000.00, but balance is only $1000.00.")
}

func TestWithdrawRejectsGarbage(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/withdraw", url.Values{"amount": {"lots"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid amount entered.")
}

func TestBalanceRedirectsUnauthenticatedSession(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/balance")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/labs/atm/home", w.Header().Get("HX-Redirect"))
	assert.Empty(t, w.Body.String())
}

func TestBalanceAfterLogin(t *testing.T) {
	h := labtest.Mount(New())

	labtest.PostForm(h, "/simulation/insert-card", nil)
	labtest.PostForm(h, "/login", url.Values{"pin": {"1234"}})
	w := labtest.Get(h, "/balance")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your current balance is: $1000.00")
}

func TestRemoveCardResetsSession(t *testing.T) {
	app := New()
	h := labtest.Mount(app)

	labtest.PostForm(h, "/simulation/insert-card", nil)
	labtest.PostForm(h, "/login", url.Values{"pin": {"1234"}})
	labtest.PostForm(h, "/withdraw", url.Values{"amount": {"100"}})
	w := labtest.PostForm(h, "/simulation/remove-card", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	app.mu.Lock()
	defer app.mu.Unlock()
	assert.False(t, app.cardInserted)
	assert.False(t, app.authenticated)
	assert.EqualValues(t, startingBalanceCents, app.balanceCents)
}
