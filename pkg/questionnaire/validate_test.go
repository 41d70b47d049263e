package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateText(t *testing.T) {
	q := Question{ID: "bio", InputType: InputText}

	assert.True(t, Validate(q, TextValue("hello")))
	assert.False(t, Validate(q, TextValue("")))
	assert.False(t, Validate(q, TextValue("   \t ")), "whitespace-only trims to empty")
	assert.False(t, Validate(q, AnswerValue{}), "untouched input is invalid")
	assert.False(t, Validate(q, NumberValue(3)), "kind mismatch")

	t.Run("max length", func(t *testing.T) {
		q.Rules.MaxLength = 5
		assert.True(t, Validate(q, TextValue("12345")))
		assert.False(t, Validate(q, TextValue("123456")))
	})
}

func TestValidateMultiFieldTextarea(t *testing.T) {
	q := Question{
		ID:        "prompts",
		InputType: InputTextarea,
		Options:   Options{FieldCount: 3},
	}

	assert.True(t, Validate(q, TextsValue([]string{"a", "b", "c"})))
	assert.False(t, Validate(q, TextsValue([]string{"a", "b"})), "wrong arity")
	assert.False(t, Validate(q, TextsValue([]string{"a", " ", "c"})), "every field must be non-empty")

	t.Run("single field textarea behaves like text", func(t *testing.T) {
		single := Question{ID: "about", InputType: InputTextarea}
		assert.True(t, Validate(single, TextValue("something")))
		assert.False(t, Validate(single, TextValue(" ")))
	})
}

func TestValidateSingleChoice(t *testing.T) {
	q := Question{
		ID:        "smoking",
		InputType: InputSingleChoice,
		Options:   Options{Choices: []string{"never", "socially", "regularly"}},
	}

	assert.True(t, Validate(q, ChoiceValue("socially")))
	assert.False(t, Validate(q, ChoiceValue("sometimes")), "value must be a listed option")
	assert.False(t, Validate(q, ChoiceValue("")))
}

func TestValidateMultipleChoice(t *testing.T) {
	q := Question{
		ID:        "values",
		InputType: InputMultipleChoice,
		Options:   Options{Choices: []string{"honesty", "humor", "ambition", "kindness"}},
		Rules:     Rules{MaxSelections: 3},
	}

	assert.True(t, Validate(q, ChoicesValue([]string{"honesty"})))
	assert.True(t, Validate(q, ChoicesValue([]string{"honesty", "humor", "ambition"})))
	assert.False(t, Validate(q, ChoicesValue(nil)), "at least one selection")
	assert.False(t, Validate(q, ChoicesValue([]string{"honesty", "humor", "ambition", "kindness"})), "maxSelections cap")
	assert.False(t, Validate(q, ChoicesValue([]string{"honesty", "patience"})), "unknown option")

	t.Run("min selections", func(t *testing.T) {
		q.Rules.MinSelections = 2
		assert.False(t, Validate(q, ChoicesValue([]string{"honesty"})))
		assert.True(t, Validate(q, ChoicesValue([]string{"honesty", "humor"})))
	})

	t.Run("repeated selections", func(t *testing.T) {
		assert.False(t, Validate(q, ChoicesValue([]string{"honesty", "honesty"})),
			"a repeated tag toggles itself back off")
	})
}

func TestValidateAutocomplete(t *testing.T) {
	q := Question{
		ID:        "city",
		InputType: InputAutocomplete,
		Options:   Options{Choices: []string{"Amsterdam", "Berlin", "Copenhagen"}},
	}

	assert.True(t, Validate(q, ChoiceValue("Berlin")))
	assert.False(t, Validate(q, ChoiceValue("berlin")), "must match the supplied option exactly")
	assert.False(t, Validate(q, ChoiceValue("Oslo")))
}

func TestValidateNumberAndScale(t *testing.T) {
	number := Question{
		ID:        "height",
		InputType: InputNumber,
		Options:   Options{Min: 140, Max: 220},
	}
	assert.True(t, Validate(number, NumberValue(178)))
	assert.True(t, Validate(number, NumberValue(140)))
	assert.True(t, Validate(number, NumberValue(220)))
	assert.False(t, Validate(number, NumberValue(139)))
	assert.False(t, Validate(number, NumberValue(221)))

	scale := Question{
		ID:        "importance",
		InputType: InputScale,
		Options:   Options{Min: 1, Max: 5},
	}
	assert.True(t, Validate(scale, NumberValue(3)))
	assert.False(t, Validate(scale, NumberValue(3.5)), "scale accepts integer steps only")
	assert.False(t, Validate(scale, NumberValue(0)))
	assert.False(t, Validate(scale, NumberValue(6)))
}

func TestValidateDate(t *testing.T) {
	q := Question{ID: "birthdate", InputType: InputDate}
	assert.True(t, Validate(q, DateValue("1990-04-12")))
	assert.False(t, Validate(q, AnswerValue{Kind: KindDate}), "cleared candidate is invalid")

	t.Run("raw payloads bypass the composite input", func(t *testing.T) {
		assert.False(t, Validate(q, DateValue("banana")), "not a date at all")
		assert.False(t, Validate(q, DateValue("2021-02-31")), "february has no 31st")
		assert.False(t, Validate(q, DateValue("12-04-1990")), "wrong field order")
		assert.False(t, Validate(q, DateValue("2020-01-01")), "under the age floor")
		assert.False(t, Validate(q, DateValue("1890-01-01")), "before the year floor")
	})
}

func TestDecodeValueRoundTrip(t *testing.T) {
	original := ChoicesValue([]string{"reading", "hiking"})
	data, err := original.Encode()
	assert.NoError(t, err)

	decoded, err := DecodeValue(data)
	assert.NoError(t, err)
	assert.Equal(t, original, decoded)

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := DecodeValue([]byte(`{"type":"blob"}`))
		assert.Error(t, err)
	})
}
