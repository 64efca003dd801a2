package renovation

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestRenovationItem(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/renovation/item")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-testid="new-item-1"`)
	assert.Contains(t, w.Body.String(), "A shiny new glass pane")
}

func TestDoorAssemblyContainsDoorknob(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/hardware-store/door-assembly")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="doorknob"`)
	assert.Contains(t, w.Body.String(), "A brass doorknob")
	assert.Contains(t, w.Body.String(), "A metal kick plate.")
}

func TestOrderCustomCabinet(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/order/custom-cabinet", url.Values{"width": {"250px"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Custom Cabinet (Width: 250px)")
	assert.Contains(t, w.Body.String(), "width: 250px")
}

func TestOrderCustomCabinetRequiresWidth(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/order/custom-cabinet", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
