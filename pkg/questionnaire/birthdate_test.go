package questionnaire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func enterDate(b *Birthdate, day, month, year string) {
	b.SetField(FieldDay, day)
	b.SetField(FieldMonth, month)
	b.SetField(FieldYear, year)
}

func TestBirthdateAutoAdvance(t *testing.T) {
	b := NewBirthdate()

	focus := b.Type(FieldDay, '1')
	assert.Equal(t, FieldDay, focus, "focus stays until the cap is reached")
	focus = b.Type(FieldDay, '2')
	assert.Equal(t, FieldMonth, focus, "two digits advance to month")

	focus = b.Type(FieldMonth, '0')
	assert.Equal(t, FieldMonth, focus)
	focus = b.Type(FieldMonth, '4')
	assert.Equal(t, FieldYear, focus)

	for _, d := range "199" {
		focus = b.Type(FieldYear, d)
		assert.Equal(t, FieldYear, focus)
	}
	focus = b.Type(FieldYear, '0')
	assert.Equal(t, FieldYear, focus, "year is the last field, focus stays")
	assert.True(t, b.Complete())
}

func TestBirthdateFieldCaps(t *testing.T) {
	b := NewBirthdate()
	b.SetField(FieldDay, "123")
	b.SetField(FieldYear, "19901")
	b.SetField(FieldMonth, "0a4")

	// Non-digits dropped, buffers truncated to 2/2/4 digits.
	assert.NoError(t, b.Err)
	assert.Equal(t, "1990-04-12", b.Candidate)
}

func TestBirthdateIncompleteStaysSilent(t *testing.T) {
	b := NewBirthdate()
	b.SetField(FieldDay, "31")
	b.SetField(FieldMonth, "02")

	assert.NoError(t, b.Err, "no error until all three buffers are full")
	assert.Empty(t, b.Candidate)
}

func TestBirthdateCalendarValidity(t *testing.T) {
	t.Run("february 31 is rejected with cleared candidate", func(t *testing.T) {
		b := NewBirthdateAt(fixedNow(2026, time.August, 31))
		enterDate(b, "31", "02", "2021")

		assert.ErrorIs(t, b.Err, ErrInvalidDate)
		assert.Empty(t, b.Candidate, "candidate must be cleared, not left stale")
		assert.True(t, b.Value().IsZero())
	})

	t.Run("candidate cleared after a previously valid entry", func(t *testing.T) {
		b := NewBirthdateAt(fixedNow(2026, time.August, 31))
		enterDate(b, "28", "02", "1990")
		require.Equal(t, "1990-02-28", b.Candidate)

		b.SetField(FieldDay, "31")
		assert.Empty(t, b.Candidate)
		assert.ErrorIs(t, b.Err, ErrInvalidDate)
	})

	t.Run("leap day accepted on leap years only", func(t *testing.T) {
		b := NewBirthdateAt(fixedNow(2026, time.August, 31))
		enterDate(b, "29", "02", "1996")
		assert.Equal(t, "1996-02-29", b.Candidate)

		enterDate(b, "29", "02", "1995")
		assert.ErrorIs(t, b.Err, ErrInvalidDate)
	})
}

func TestBirthdateRangeChecks(t *testing.T) {
	now := fixedNow(2026, time.August, 31)

	cases := []struct {
		name             string
		day, month, year string
		wantErr          error
	}{
		{"day zero", "00", "05", "1990", ErrInvalidDate},
		{"day thirty-two", "32", "05", "1990", ErrInvalidDate},
		{"month zero", "15", "00", "1990", ErrInvalidDate},
		{"month thirteen", "15", "13", "1990", ErrInvalidDate},
		{"year before 1900", "15", "05", "1899", ErrInvalidDate},
		{"older than one hundred", "15", "05", "1920", ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBirthdateAt(now)
			enterDate(b, tc.day, tc.month, tc.year)
			assert.ErrorIs(t, b.Err, tc.wantErr)
			assert.Empty(t, b.Candidate)
		})
	}
}

func TestBirthdateAgeBoundary(t *testing.T) {
	now := fixedNow(2026, time.August, 31)

	t.Run("seventeen years and 364 days is underage", func(t *testing.T) {
		b := NewBirthdateAt(now)
		enterDate(b, "01", "09", "2008")

		assert.ErrorIs(t, b.Err, ErrUnderage)
		assert.Empty(t, b.Candidate)
	})

	t.Run("exactly eighteen is accepted", func(t *testing.T) {
		b := NewBirthdateAt(now)
		enterDate(b, "31", "08", "2008")

		assert.NoError(t, b.Err)
		assert.Equal(t, "2008-08-31", b.Candidate)
		assert.Equal(t, DateValue("2008-08-31"), b.Value())
	})
}

func TestValidateISODate(t *testing.T) {
	now := fixedNow(2026, time.August, 31)

	cases := []struct {
		name    string
		iso     string
		wantErr error
	}{
		{"valid", "1990-04-12", nil},
		{"not a date", "banana", ErrInvalidDate},
		{"wrong separators", "1990/04/12", ErrInvalidDate},
		{"wrong field order", "12-04-1990", ErrInvalidDate},
		{"letters in a field", "199o-04-12", ErrInvalidDate},
		{"february thirty-first", "2021-02-31", ErrInvalidDate},
		{"underage", "2020-01-01", ErrUnderage},
		{"before year floor", "1890-01-01", ErrInvalidDate},
		{"exactly eighteen", "2008-08-31", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateISODate(now, tc.iso)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
