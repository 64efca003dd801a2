package stage

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hxlabs/courseware/internal/htmx"
	"github.com/hxlabs/courseware/internal/labs/labtest"
)

func TestSetPieceFragments(t *testing.T) {
	h := labtest.Mount(New())

	tests := []struct {
		name     string
		path     string
		contains []string
	}{
		{name: "backdrop", path: "/set/backdrop-painting", contains: []string{"Stormy+Sea", "<img"}},
		{name: "fireplace", path: "/set/fireplace-prop", contains: []string{"fireplace-after", "Modern Hearth"}},
		{name: "chair", path: "/set/add-chair", contains: []string{"chair-prop", "New Chair"}},
		{name: "coat rack", path: "/set/add-coat-rack", contains: []string{"coat-rack-prop", "Coat Rack"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := labtest.Get(h, tc.path)
			assert.Equal(t, http.StatusOK, w.Code)
			for _, want := range tc.contains {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestInventoryContainsSelectableTelephone(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/props/inventory")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `id="antique-telephone"`)
	assert.Contains(t, body, `id="fancy-vase"`)
	assert.Contains(t, body, `id="grandfather-clock"`)
}

func TestWorkshopRequestEchoesDimensions(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/workshop/request", url.Values{
		"stage_width":  {"12"},
		"stage_height": {"8"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ordered for stage (12x8)")
}

func TestWorkshopRequestRejectsNonNumericDimensions(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.PostForm(h, "/workshop/request", url.Values{
		"stage_width":  {"wide"},
		"stage_height": {"8"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSpecialEffectsCueTriggersClientEvents(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.Get(h, "/cue/special-effects")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Effects cued!")
	trigger := w.Header().Get(htmx.HeaderTrigger)
	assert.Contains(t, trigger, `"flash-lights":null`)
	assert.Contains(t, trigger, `"play-sound":null`)
}

func TestIndexRendersStage(t *testing.T) {
	h := labtest.Mount(New())
	w := labtest.DoPage(h, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Old Fireplace")
	assert.Contains(t, w.Body.String(), "hx-select")
}
