package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxlabs/courseware/internal/catalog"
)

// Every catalog entry needs a backend and every backend a catalog entry.
func TestRegistryMatchesCatalog(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	for _, lesson := range c.Lessons() {
		b, ok := Lookup(lesson.Slug)
		require.True(t, ok, "no builder for catalog slug %q", lesson.Slug)
		assert.NotNil(t, b())
	}

	for _, slug := range Slugs() {
		assert.True(t, c.Has(slug), "builder %q missing from catalog", slug)
	}
}

func TestBuildersReturnFreshState(t *testing.T) {
	b, ok := Lookup("kitchen")
	require.True(t, ok)
	a1, a2 := b(), b()
	assert.NotSame(t, a1, a2)
}

func TestLookupUnknownSlug(t *testing.T) {
	_, ok := Lookup("time-machine")
	assert.False(t, ok)
}
