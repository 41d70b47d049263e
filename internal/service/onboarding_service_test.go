package service

import (
	"errors"
	"testing"

	"bloom-be/internal/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestSubmitRejectionKey(t *testing.T) {
	translator := i18n.NewTranslator("en")

	cases := []struct {
		name string
		err  error
		key  string
	}{
		{"already submitted", ErrProfileAlreadySubmitted, "submit.already_submitted"},
		{"already approved", ErrProfileAlreadyApproved, "submit.already_approved"},
		{"missing photo", ErrProfileNeedsPhoto, "onboarding.need_photo"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := submitRejectionKey(tc.err)
			assert.True(t, ok)
			assert.Equal(t, tc.key, key)

			// Every rejection key must resolve to real copy in both
			// locales, never fall back to the key itself.
			for _, locale := range []string{"en", "ja"} {
				assert.NotEqual(t, key, translator.T(locale, key))
			}
		})
	}

	t.Run("infrastructure errors pass through", func(t *testing.T) {
		_, ok := submitRejectionKey(errors.New("connection refused"))
		assert.False(t, ok)
	})
}
