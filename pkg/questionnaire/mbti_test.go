package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMBTIEnumeration(t *testing.T) {
	assert.Len(t, MBTITypes, 16)
	assert.True(t, IsMBTIType("INFP"))
	assert.True(t, IsMBTIType("enfp"), "case-insensitive membership")
	assert.False(t, IsMBTIType("XXXX"))
	assert.False(t, IsMBTIType(""))
}

func TestAxesForType(t *testing.T) {
	axes, ok := AxesForType("ENTJ")
	assert.True(t, ok)
	assert.Equal(t, MBTIAxes{EI: 0, SN: 100, TF: 0, JP: 0}, axes)

	axes, ok = AxesForType("ISFP")
	assert.True(t, ok)
	assert.Equal(t, MBTIAxes{EI: 100, SN: 0, TF: 100, JP: 100}, axes)

	_, ok = AxesForType("ABCD")
	assert.False(t, ok)
}

func TestCompatibility(t *testing.T) {
	t.Run("identical axes score 100", func(t *testing.T) {
		a := MBTIAxes{EI: 30, SN: 70, TF: 50, JP: 90}
		assert.Equal(t, 100, Compatibility(a, a))
	})

	t.Run("opposite poles score 0", func(t *testing.T) {
		score, ok := TypeCompatibility("ENTJ", "ISFP")
		assert.True(t, ok)
		assert.Equal(t, 0, score)
	})

	t.Run("single differing axis scores 75", func(t *testing.T) {
		score, ok := TypeCompatibility("INFP", "ENFP")
		assert.True(t, ok)
		assert.Equal(t, 75, score)
	})

	t.Run("out-of-range slider state is clamped", func(t *testing.T) {
		a := MBTIAxes{EI: -20, SN: 130, TF: 50, JP: 50}
		b := MBTIAxes{EI: 0, SN: 100, TF: 50, JP: 50}
		assert.Equal(t, 100, Compatibility(a, b))
	})
}

func TestMBTIGridSingleSelect(t *testing.T) {
	g := &MBTIGrid{}
	assert.False(t, g.Valid())

	g.Toggle("INFP")
	assert.Equal(t, ChoiceValue("INFP"), g.Value())

	t.Run("second selection replaces the first", func(t *testing.T) {
		g.Toggle("ENFP")
		assert.Equal(t, ChoiceValue("ENFP"), g.Value())
		assert.Len(t, g.Selected, 1)
	})

	t.Run("toggling the current selection clears it", func(t *testing.T) {
		g.Toggle("ENFP")
		assert.False(t, g.Valid())
		assert.True(t, g.Value().IsZero())
	})

	t.Run("unknown codes are ignored", func(t *testing.T) {
		g.Toggle("ZZZZ")
		assert.Empty(t, g.Selected)
	})
}

func TestMBTIGridMultiSelect(t *testing.T) {
	g := &MBTIGrid{Multi: true}
	g.Toggle("INFP")
	g.Toggle("ENFP")
	g.Toggle("infj")

	assert.Equal(t, ChoicesValue([]string{"INFP", "ENFP", "INFJ"}), g.Value())
	assert.True(t, g.Valid())

	g.Toggle("ENFP")
	assert.Equal(t, ChoicesValue([]string{"INFP", "INFJ"}), g.Value())
}
