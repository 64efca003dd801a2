package registrar

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestRegisterSuccess(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/register/success", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "My Fall Schedule")
	assert.Contains(t, w.Body.String(), "BIOL-101: Introduction to Biology")
}

func TestRegisterFullReturnsConflict(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/register/full", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Error: Course is full.")
}

func TestRecordErrors(t *testing.T) {
	h := labtest.Mount(New())

	tests := []struct {
		name   string
		path   string
		status int
		want   string
	}{
		{name: "forbidden grades", path: "/records/grades/forbidden", status: http.StatusForbidden, want: "Access Denied (403 Forbidden)"},
		{name: "missing transcript", path: "/records/transcript/not-found", status: http.StatusNotFound, want: "Not Found (404)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := labtest.Get(h, tc.path)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestPaymentDueRedirects(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/records/grades/payment-due")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "/labs/registrar/pay-tuition", w.Header().Get(htmx.HeaderRedirect))
}

func TestPayTuitionPage(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.DoPage(h, "/pay-tuition")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tuition Payment Required")
	assert.Contains(t, w.Body.String(), "Pay Tuition Now")
}
