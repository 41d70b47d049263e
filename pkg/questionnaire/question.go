package questionnaire

// InputType discriminates how a question is rendered and validated.
// Rendering lives in the clients; validation for every type lives here.
type InputType string

const (
	InputText           InputType = "text"
	InputTextarea       InputType = "textarea"
	InputSingleChoice   InputType = "single_choice"
	InputMultipleChoice InputType = "multiple_choice"
	InputAutocomplete   InputType = "autocomplete"
	InputDate           InputType = "date"
	InputNumber         InputType = "number"
	InputScale          InputType = "scale"
)

// Options is the type-dependent payload of a question definition.
// Only the fields matching the question's InputType are meaningful.
type Options struct {
	Choices    []string `json:"choices,omitempty"`
	Min        float64  `json:"min,omitempty"`
	Max        float64  `json:"max,omitempty"`
	Default    float64  `json:"default,omitempty"`
	MinLabel   string   `json:"min_label,omitempty"`
	MaxLabel   string   `json:"max_label,omitempty"`
	FieldCount int      `json:"field_count,omitempty"` // textarea with N sub-fields
}

// Rules holds the optional validation constraints of a question.
type Rules struct {
	MinSelections int `json:"min_selections,omitempty"`
	MaxSelections int `json:"max_selections,omitempty"`
	MaxLength     int `json:"max_length,omitempty"`
}

type Section string

const (
	SectionProfile    Section = "profile"
	SectionPreference Section = "preference"
)

// Question is one definition from the ordered catalog.
type Question struct {
	ID       string
	Order    int
	Prompt   string
	Subtitle string
	HelpText string

	InputType InputType
	Options   Options
	Rules     Rules

	IconName string
	Section  Section

	// InsertsTransitionAfter marks the question after which the one-time
	// transition screen is shown. Exactly one question in a valid catalog
	// carries this flag.
	InsertsTransitionAfter bool
}

// Catalog is the ordered question list for one onboarding pass.
type Catalog []Question

// Boundary returns the index of the question flagged with
// InsertsTransitionAfter, or -1 if the catalog has none.
func (c Catalog) Boundary() int {
	for i, q := range c {
		if q.InsertsTransitionAfter {
			return i
		}
	}
	return -1
}

// ByID returns the question with the given id, or nil.
func (c Catalog) ByID(id string) *Question {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}
