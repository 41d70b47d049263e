package questionnaire

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Birthdate error messages. The i18n layer translates by error identity,
// so these exact values double as the English defaults.
var (
	ErrInvalidDate = errors.New("Enter a valid date of birth.")
	ErrUnderage    = errors.New("You must be at least 18 years old.")
)

const (
	dayDigits   = 2
	monthDigits = 2
	yearDigits  = 4

	minAgeYears = 18
	maxAgeYears = 100
	minYear     = 1900
)

// BirthdateField identifies one of the three digit buffers.
type BirthdateField int

const (
	FieldDay BirthdateField = iota
	FieldMonth
	FieldYear
)

// Birthdate is the composite date-of-birth input: three independent digit
// buffers with auto-advancing focus. It is the only input with multi-field
// cross-validation and the only one applying a business rule (age gating)
// on the client side of the persistence boundary.
type Birthdate struct {
	day   string
	month string
	year  string

	// Candidate holds the validated YYYY-MM-DD value, empty until all
	// three buffers validate. It is explicitly cleared on any failure so
	// a previously valid value can never go stale.
	Candidate string
	// Err holds the current validation error, nil while incomplete or valid.
	Err error

	now func() time.Time
}

func NewBirthdate() *Birthdate {
	return &Birthdate{now: time.Now}
}

// NewBirthdateAt pins "now" for deterministic age checks.
func NewBirthdateAt(now func() time.Time) *Birthdate {
	return &Birthdate{now: now}
}

func fieldCap(f BirthdateField) int {
	switch f {
	case FieldYear:
		return yearDigits
	default:
		return dayDigits
	}
}

// SetField replaces one buffer wholesale (e.g. on paste), truncating to the
// field's digit cap and dropping non-digits.
func (b *Birthdate) SetField(f BirthdateField, s string) {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) > fieldCap(f) {
		digits = digits[:fieldCap(f)]
	}
	b.assign(f, string(digits))
	b.evaluate()
}

// Type appends one digit to a buffer. It returns the field that should hold
// focus afterwards: the same field until its cap is reached, then the next.
func (b *Birthdate) Type(f BirthdateField, digit rune) BirthdateField {
	if digit < '0' || digit > '9' {
		return f
	}
	cur := b.field(f)
	if len(cur) < fieldCap(f) {
		b.assign(f, cur+string(digit))
	}
	b.evaluate()

	if len(b.field(f)) >= fieldCap(f) && f < FieldYear {
		return f + 1
	}
	return f
}

func (b *Birthdate) field(f BirthdateField) string {
	switch f {
	case FieldDay:
		return b.day
	case FieldMonth:
		return b.month
	default:
		return b.year
	}
}

func (b *Birthdate) assign(f BirthdateField, s string) {
	switch f {
	case FieldDay:
		b.day = s
	case FieldMonth:
		b.month = s
	default:
		b.year = s
	}
}

// Complete reports whether all three buffers are fully populated.
func (b *Birthdate) Complete() bool {
	return b.day != "" && b.month != "" && len(b.year) == yearDigits
}

// evaluate re-runs validation on every keystroke. Until the input is
// complete both Candidate and Err stay empty.
func (b *Birthdate) evaluate() {
	b.Candidate = ""
	b.Err = nil
	if !b.Complete() {
		return
	}

	day, _ := strconv.Atoi(b.day)
	month, _ := strconv.Atoi(b.month)
	year, _ := strconv.Atoi(b.year)

	if err := validateDateComponents(b.now, year, month, day); err != nil {
		b.Err = err
		return
	}

	b.Candidate = fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// validateDateComponents runs the ordered birthdate checks shared by the
// composite input and the server-side answer validator.
func validateDateComponents(now func() time.Time, year, month, day int) error {
	// 1. Numeric ranges.
	if day < 1 || day > 31 || month < 1 || month > 12 || year < minYear {
		return ErrInvalidDate
	}

	// 2. Calendar validity: construct and compare components. time.Date
	// normalizes overflow (Feb 31 -> Mar 3), so a mismatch means the
	// combination does not exist.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return ErrInvalidDate
	}

	// 3. Age gating.
	age := now().Sub(date).Hours() / 24 / 365.25
	if age < minAgeYears {
		return ErrUnderage
	}
	if age > maxAgeYears {
		return ErrInvalidDate
	}
	return nil
}

// ValidateISODate applies the full birthdate rule set (numeric ranges,
// calendar round-trip, 18..100 age window) to a YYYY-MM-DD string. Answers
// arriving over the wire pass through here, so a client cannot persist a
// date the composite input would have refused to emit.
func ValidateISODate(now func() time.Time, iso string) error {
	if len(iso) != 10 || iso[4] != '-' || iso[7] != '-' {
		return ErrInvalidDate
	}
	year, errY := strconv.Atoi(iso[:4])
	month, errM := strconv.Atoi(iso[5:7])
	day, errD := strconv.Atoi(iso[8:10])
	if errY != nil || errM != nil || errD != nil {
		return ErrInvalidDate
	}
	return validateDateComponents(now, year, month, day)
}

// Value returns the candidate as an AnswerValue, or a zero value while the
// input is incomplete or invalid.
func (b *Birthdate) Value() AnswerValue {
	if b.Candidate == "" {
		return AnswerValue{}
	}
	return DateValue(b.Candidate)
}
