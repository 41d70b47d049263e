package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterestFilter(t *testing.T) {
	catalog := InterestCatalog{
		{Name: "Active", Tags: []string{"running", "hiking", "climbing"}},
		{Name: "Creative", Tags: []string{"painting", "writing"}},
	}

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Equal(t, catalog, catalog.Filter(""))
		assert.Equal(t, catalog, catalog.Filter("   "))
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		got := catalog.Filter("ING")
		assert.Len(t, got, 2)
		assert.Equal(t, []string{"running", "hiking", "climbing"}, got[0].Tags)
		assert.Equal(t, []string{"painting", "writing"}, got[1].Tags)

		got = catalog.Filter("climb")
		assert.Len(t, got, 1)
		assert.Equal(t, []string{"climbing"}, got[0].Tags)
	})

	t.Run("empty categories are dropped", func(t *testing.T) {
		got := catalog.Filter("paint")
		assert.Len(t, got, 1)
		assert.Equal(t, "Creative", got[0].Name)
	})

	t.Run("no match yields empty catalog", func(t *testing.T) {
		assert.Empty(t, catalog.Filter("chess"))
	})
}

func TestInterestPickerToggle(t *testing.T) {
	p := &InterestPicker{Max: 3}

	assert.True(t, p.Toggle("running"))
	assert.True(t, p.Toggle("hiking"))
	assert.True(t, p.Toggle("painting"))
	assert.Len(t, p.Selected, 3)

	t.Run("fourth selection is a no-op at the cap", func(t *testing.T) {
		assert.False(t, p.Toggle("writing"))
		assert.Len(t, p.Selected, 3)
		assert.NotContains(t, p.Selected, "writing")
	})

	t.Run("deselect then reselect succeeds", func(t *testing.T) {
		assert.False(t, p.Toggle("hiking"), "toggle removes existing membership")
		assert.Len(t, p.Selected, 2)

		assert.True(t, p.Toggle("writing"))
		assert.Len(t, p.Selected, 3)
		assert.Contains(t, p.Selected, "writing")
	})
}

func TestInterestPickerValidity(t *testing.T) {
	t.Run("default floor of five applies", func(t *testing.T) {
		p := &InterestPicker{}
		for _, tag := range []string{"a", "b", "c", "d"} {
			p.Toggle(tag)
		}
		assert.False(t, p.Valid())
		p.Toggle("e")
		assert.True(t, p.Valid())
	})

	t.Run("explicit floor overrides the default", func(t *testing.T) {
		p := &InterestPicker{Min: 2}
		p.Toggle("a")
		assert.False(t, p.Valid())
		p.Toggle("b")
		assert.True(t, p.Valid())
	})
}

func TestDefaultInterestCatalog(t *testing.T) {
	tags := DefaultInterestCatalog.AllTags()
	assert.GreaterOrEqual(t, len(tags), 40, "catalog is large enough to need the filter")

	seen := make(map[string]bool)
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate tag %s", tag)
		seen[tag] = true
	}
}
