package questionnaire

import (
	"strings"
	"time"
)

// Validate reports whether value is an acceptable answer for q. The result
// is a plain boolean on purpose: an invalid answer disables forward
// navigation, it is never surfaced as an error.
//
// Rules per input type:
//
//	text / textarea (single field)  non-empty after trim
//	textarea (N fields)             exactly N elements, each non-empty after trim
//	single_choice                   member of the option list
//	multiple_choice                 min..maxSelections distinct members
//	autocomplete                    member of the option list
//	date                            valid calendar date, age within [18, 100]
//	number                          within [min, max]
//	scale                           integer step within [min, max]
func Validate(q Question, v AnswerValue) bool {
	if v.IsZero() {
		return false
	}
	if v.Kind != ExpectedKind(q) {
		return false
	}

	switch q.InputType {
	case InputText:
		return validText(v.Text, q.Rules.MaxLength)

	case InputTextarea:
		if q.Options.FieldCount > 1 {
			if len(v.Texts) != q.Options.FieldCount {
				return false
			}
			for _, t := range v.Texts {
				if !validText(t, q.Rules.MaxLength) {
					return false
				}
			}
			return true
		}
		return validText(v.Text, q.Rules.MaxLength)

	case InputSingleChoice, InputAutocomplete:
		return contains(q.Options.Choices, v.Choice)

	case InputMultipleChoice:
		// Drive the picker widget state so the server applies the same
		// cap semantics the UI does. Duplicates toggle themselves off and
		// over-cap selections are refused, so both reject the payload.
		min := q.Rules.MinSelections
		if min <= 0 {
			min = 1
		}
		picker := InterestPicker{Min: min, Max: q.Rules.MaxSelections}
		for _, c := range v.Choices {
			if len(q.Options.Choices) > 0 && !contains(q.Options.Choices, c) {
				return false
			}
			if !picker.Toggle(c) {
				return false
			}
		}
		return picker.Valid()

	case InputDate:
		// The composite input only emits validated candidates, but the
		// wire accepts arbitrary strings; re-run the full rule set here.
		return ValidateISODate(time.Now, v.Date) == nil

	case InputNumber, InputScale:
		if v.Number < q.Options.Min || v.Number > q.Options.Max {
			return false
		}
		if q.InputType == InputScale {
			return v.Number == float64(int(v.Number))
		}
		return true
	}

	return false
}

func validText(s string, maxLen int) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	if maxLen > 0 && len(trimmed) > maxLen {
		return false
	}
	return true
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
