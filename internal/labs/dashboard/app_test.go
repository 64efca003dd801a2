package dashboard

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestFuelLevelPolling(t *testing.T) {
	app := New()
	h := labtest.Mount(app)

	w := labtest.Get(h, "/api/fuel-level")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fuel: 98%")

	app.SetFuelLevel(42)
	w = labtest.Get(h, "/api/fuel-level")
	assert.Contains(t, w.Body.String(), "Fuel: 42%")
}

func TestSetFuelLevelClamps(t *testing.T) {
	app := New()
	h := labtest.Mount(app)

	app.SetFuelLevel(180)
	assert.Contains(t, labtest.Get(h, "/api/fuel-level").Body.String(), "Fuel: 100%")

	app.SetFuelLevel(-5)
	assert.Contains(t, labtest.Get(h, "/api/fuel-level").Body.String(), "Fuel: 0%")
}

func TestCalculateRoute(t *testing.T) {
	h := labtest.Mount(New())

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "fastest route",
			form: url.Values{"destination": {"Lisbon"}},
			want: "Route to 'Lisbon' via the fastest route is being calculated...",
		},
		{
			name: "avoiding tolls",
			form: url.Values{"destination": {"Porto"}, "avoid_tolls": {"on"}},
			want: "Route to 'Porto' avoiding tolls is being calculated...",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := labtest.PostForm(h, "/api/calculate-route", tc.form)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestCalculateRouteRequiresDestination(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/api/calculate-route", url.Values{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestInvalidStationReturns404(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/api/tune-invalid-station")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Error: Station not found.")
}

func TestGPSSensorReturns500(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/api/check-gps-sensor")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error: GPS sensor is offline.")
}

func TestRaceModeRedirects(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/page/settings/race-mode")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "/labs/dashboard/page/driving-mode-selection", w.Header().Get(htmx.HeaderRedirect))
}

func TestDrivingModeSelectionPage(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.DoPage(h, "/page/driving-mode-selection")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Driving Mode Selection")
	assert.Contains(t, w.Body.String(), "Please select a driving mode")
}
