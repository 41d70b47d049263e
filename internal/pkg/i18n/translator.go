package i18n

// Translator resolves user-facing message keys per locale. It is passed
// explicitly to services that render text instead of being read from a
// global, so tests can inject a fixed locale.
type Translator struct {
	defaultLocale string
	messages      map[string]map[string]string
}

func NewTranslator(defaultLocale string) *Translator {
	return &Translator{
		defaultLocale: defaultLocale,
		messages: map[string]map[string]string{
			"en": {
				"birthdate.invalid":        "Enter a valid date of birth.",
				"birthdate.underage":       "You must be at least 18 years old.",
				"onboarding.completed":     "Your profile has been submitted for review.",
				"onboarding.incomplete":    "Finish the remaining questions before submitting.",
				"onboarding.need_photo":    "Add at least one photo to continue.",
				"submit.already_submitted": "Your profile is already under review.",
				"submit.already_approved":  "Your profile has already been approved.",
				"answer.invalid":           "That answer is not valid for this question.",
				"transition.title":         "Almost there",
				"transition.body":          "Now tell us what you are looking for in a partner.",
			},
			"ja": {
				"birthdate.invalid":        "正しい生年月日を入力してください。",
				"birthdate.underage":       "18歳以上である必要があります。",
				"onboarding.completed":     "プロフィールを審査に提出しました。",
				"onboarding.incomplete":    "提出する前に残りの質問に回答してください。",
				"onboarding.need_photo":    "続けるには写真を1枚以上追加してください。",
				"submit.already_submitted": "プロフィールはすでに審査中です。",
				"submit.already_approved":  "プロフィールはすでに承認されています。",
				"answer.invalid":           "この質問への回答が正しくありません。",
				"transition.title":         "あと少しです",
				"transition.body":          "次は、お相手に求めることを教えてください。",
			},
		},
	}
}

// T returns the message for key in the given locale, falling back to the
// default locale and finally to the key itself.
func (t *Translator) T(locale, key string) string {
	if m, ok := t.messages[locale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if m, ok := t.messages[t.defaultLocale]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return key
}

// Locales lists the locales with message tables.
func (t *Translator) Locales() []string {
	out := make([]string, 0, len(t.messages))
	for l := range t.messages {
		out = append(out, l)
	}
	return out
}
