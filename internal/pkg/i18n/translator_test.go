package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorFallbackChain(t *testing.T) {
	tr := NewTranslator("en")

	assert.Equal(t, "Your profile has been submitted for review.", tr.T("en", "onboarding.completed"))
	assert.Equal(t, "プロフィールを審査に提出しました。", tr.T("ja", "onboarding.completed"))

	// Unknown locale falls back to the default locale
	assert.Equal(t, "Enter a valid date of birth.", tr.T("fr", "birthdate.invalid"))

	// Unknown key falls through to the key itself
	assert.Equal(t, "no.such.key", tr.T("en", "no.such.key"))
}

func TestTranslatorLocales(t *testing.T) {
	tr := NewTranslator("en")
	assert.ElementsMatch(t, []string{"en", "ja"}, tr.Locales())
}
