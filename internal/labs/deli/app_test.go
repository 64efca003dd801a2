package deli

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestAddItemRendersSummary(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/add-item", url.Values{"item": {"Pastrami on Rye"}, "quantity": {"2"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pastrami on Rye")
	assert.Contains(t, w.Body.String(), "x2")
}

func TestAddItemMergesDuplicateNames(t *testing.T) {
	app := New()
	h := labtest.Mount(app)

	labtest.PostForm(h, "/add-item", url.Values{"item": {"Pickles"}, "quantity": {"1"}})
	w := labtest.PostForm(h, "/add-item", url.Values{"item": {"Pickles"}, "quantity": {"3"}})

	assert.Contains(t, w.Body.String(), "x4")
	order := app.Order()
	require.Len(t, order, 1)
	assert.Equal(t, 4, order[0].Quantity)
}

func TestAddItemKeepsDistinctItems(t *testing.T) {
	h := labtest.Mount(New())

	labtest.PostForm(h, "/add-item", url.Values{"item": {"Pickles"}, "quantity": {"1"}})
	w := labtest.PostForm(h, "/add-item", url.Values{"item": {"Root Beer"}, "quantity": {"1"}})

	body := w.Body.String()
	assert.Contains(t, body, "Pickles")
	assert.Contains(t, body, "Root Beer")
}

func TestAddItemValidation(t *testing.T) {
	h := labtest.Mount(New())

	tests := []struct {
		name string
		form url.Values
	}{
		{name: "missing item", form: url.Values{"quantity": {"1"}}},
		{name: "missing quantity", form: url.Values{"item": {"Pickles"}}},
		{name: "non-numeric quantity", form: url.Values{"item": {"Pickles"}, "quantity": {"lots"}}},
		{name: "zero quantity", form: url.Values{"item": {"Pickles"}, "quantity": {"0"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := labtest.PostForm(h, "/add-item", tc.form)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func TestIndexShowsEmptyOrder(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.DoPage(h, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your order is empty.")
}
