package questionnaire

import (
	"encoding/json"
	"fmt"
)

// ValueKind tags an AnswerValue. The tags line up with InputType so that
// validation can switch exhaustively instead of guessing at blob shapes.
type ValueKind string

const (
	KindText    ValueKind = "text"
	KindTexts   ValueKind = "texts" // multi-field textarea
	KindChoice  ValueKind = "choice"
	KindChoices ValueKind = "choices"
	KindNumber  ValueKind = "number"
	KindDate    ValueKind = "iso_date"
)

// AnswerValue is the tagged union of every answer shape the catalog can
// produce. Zero value means "no answer yet".
type AnswerValue struct {
	Kind    ValueKind `json:"type"`
	Text    string    `json:"text,omitempty"`
	Texts   []string  `json:"texts,omitempty"`
	Choice  string    `json:"choice,omitempty"`
	Choices []string  `json:"choices,omitempty"`
	Number  float64   `json:"number,omitempty"`
	Date    string    `json:"date,omitempty"` // YYYY-MM-DD
}

func TextValue(s string) AnswerValue      { return AnswerValue{Kind: KindText, Text: s} }
func TextsValue(s []string) AnswerValue   { return AnswerValue{Kind: KindTexts, Texts: s} }
func ChoiceValue(s string) AnswerValue    { return AnswerValue{Kind: KindChoice, Choice: s} }
func ChoicesValue(s []string) AnswerValue { return AnswerValue{Kind: KindChoices, Choices: s} }
func NumberValue(n float64) AnswerValue   { return AnswerValue{Kind: KindNumber, Number: n} }
func DateValue(iso string) AnswerValue    { return AnswerValue{Kind: KindDate, Date: iso} }

// IsZero reports whether no answer has been given.
func (v AnswerValue) IsZero() bool {
	return v.Kind == ""
}

// Encode serializes the value for JSONB storage.
func (v AnswerValue) Encode() ([]byte, error) {
	return json.Marshal(v)
}

// DecodeValue parses a stored JSONB answer value.
func DecodeValue(data []byte) (AnswerValue, error) {
	var v AnswerValue
	if len(data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return AnswerValue{}, fmt.Errorf("decode answer value: %w", err)
	}
	switch v.Kind {
	case "", KindText, KindTexts, KindChoice, KindChoices, KindNumber, KindDate:
		return v, nil
	default:
		return AnswerValue{}, fmt.Errorf("unknown answer value kind %q", v.Kind)
	}
}

// ExpectedKind returns the value kind a question's input type produces.
func ExpectedKind(q Question) ValueKind {
	switch q.InputType {
	case InputText:
		return KindText
	case InputTextarea:
		if q.Options.FieldCount > 1 {
			return KindTexts
		}
		return KindText
	case InputSingleChoice, InputAutocomplete:
		return KindChoice
	case InputMultipleChoice:
		return KindChoices
	case InputNumber, InputScale:
		return KindNumber
	case InputDate:
		return KindDate
	}
	return ""
}
