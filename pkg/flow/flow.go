package flow

import (
	"context"
	"errors"
	"fmt"

	"bloom-be/pkg/questionnaire"
)

// Step is the navigator's state tag.
type Step string

const (
	StepPhotos        Step = "photos"
	StepQuestionnaire Step = "questionnaire"
	StepTransition    Step = "transition"
	StepComplete      Step = "complete"
)

var (
	// ErrInvalidAnswer rejects a Next call without any state change. It is
	// the machine-side equivalent of a disabled button, not a failure.
	ErrInvalidAnswer = errors.New("answer is not valid for the current question")

	ErrWrongStep = errors.New("operation not allowed in current step")
	ErrNeedPhoto = errors.New("at least one photo is required")
)

// SaveError reports a persistence failure that did NOT block navigation.
// Writes are optimistic: the machine advances and the caller surfaces the
// failure as a dismissible notification.
type SaveError struct {
	QuestionID string
	Err        error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save answer %s: %v", e.QuestionID, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// AnswerSink persists one answer per call. Upsert semantics are the sink's
// responsibility; the machine never re-reads what it wrote.
type AnswerSink interface {
	SaveAnswer(ctx context.Context, questionID string, value questionnaire.AnswerValue) error
}

// Snapshot is the externally visible machine state.
type Snapshot struct {
	Step     Step `json:"step"`
	Index    int  `json:"index"`
	Total    int  `json:"total"`
	Boundary int  `json:"boundary"`
}

// Progress renders the position as (answered so far, total, percent).
// Pure function of the snapshot; the machine owns no progress state.
func (s Snapshot) Progress() (current, total, percent int) {
	total = s.Total
	if total == 0 {
		return 0, 0, 0
	}
	switch s.Step {
	case StepComplete:
		current = total
	case StepQuestionnaire, StepTransition:
		current = s.Index
	}
	return current, total, current * 100 / total
}

// Machine walks the ordered catalog:
//
//	photos -> questionnaire <-> transition -> questionnaire -> complete
//
// The transition screen appears exactly once, after the question flagged
// InsertsTransitionAfter.
type Machine struct {
	catalog  questionnaire.Catalog
	boundary int
	sink     AnswerSink

	step  Step
	index int
}

// New builds a machine. Initial state: fewer than one uploaded photo means
// the photo step, otherwise the questionnaire from index 0. Partial answer
// progress is deliberately not resumed (see repository design notes).
func New(catalog questionnaire.Catalog, photoCount int, sink AnswerSink) (*Machine, error) {
	if len(catalog) == 0 {
		return nil, errors.New("empty question catalog")
	}
	boundary := catalog.Boundary()
	if boundary < 0 || boundary >= len(catalog)-1 {
		return nil, errors.New("catalog must flag one transition boundary before its last question")
	}
	m := &Machine{
		catalog:  catalog,
		boundary: boundary,
		sink:     sink,
		step:     StepPhotos,
	}
	if photoCount >= 1 {
		m.step = StepQuestionnaire
	}
	return m, nil
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{Step: m.step, Index: m.index, Total: len(m.catalog), Boundary: m.boundary}
}

// Current returns the question at the cursor, nil outside the questionnaire.
func (m *Machine) Current() *questionnaire.Question {
	if m.step != StepQuestionnaire {
		return nil
	}
	return &m.catalog[m.index]
}

// ContinueFromPhotos leaves the photo step once at least one photo exists.
func (m *Machine) ContinueFromPhotos(photoCount int) error {
	if m.step != StepPhotos {
		return ErrWrongStep
	}
	if photoCount < 1 {
		return ErrNeedPhoto
	}
	m.step = StepQuestionnaire
	m.index = 0
	return nil
}

// Next validates the current answer, persists it, and advances. An invalid
// answer returns ErrInvalidAnswer with no transition. A failed save returns
// *SaveError but the machine still advances; callers must treat it as a
// warning, not a rollback trigger.
func (m *Machine) Next(ctx context.Context, value questionnaire.AnswerValue) error {
	if m.step != StepQuestionnaire {
		return ErrWrongStep
	}
	q := m.catalog[m.index]
	if !questionnaire.Validate(q, value) {
		return ErrInvalidAnswer
	}

	var saveErr error
	if err := m.sink.SaveAnswer(ctx, q.ID, value); err != nil {
		saveErr = &SaveError{QuestionID: q.ID, Err: err}
	}

	switch {
	case m.index == m.boundary:
		m.step = StepTransition // index intentionally unchanged
	case m.index == len(m.catalog)-1:
		m.step = StepComplete
	default:
		m.index++
	}
	return saveErr
}

// Back is the inverse walk. Immediately after the transition screen it
// returns to the transition rather than decrementing; at index 0 it falls
// back to the photo step.
func (m *Machine) Back() error {
	if m.step != StepQuestionnaire {
		return ErrWrongStep
	}
	switch {
	case m.index == m.boundary+1:
		m.step = StepTransition
	case m.index > 0:
		m.index--
	default:
		m.step = StepPhotos
	}
	return nil
}

// ContinueFromTransition enters the second catalog section.
func (m *Machine) ContinueFromTransition() error {
	if m.step != StepTransition {
		return ErrWrongStep
	}
	m.index = m.boundary + 1
	m.step = StepQuestionnaire
	return nil
}

// BackFromTransition returns to the boundary question.
func (m *Machine) BackFromTransition() error {
	if m.step != StepTransition {
		return ErrWrongStep
	}
	m.index = m.boundary
	m.step = StepQuestionnaire
	return nil
}

// Complete reports whether the machine reached its terminal state. The
// submit-for-review call lives outside the machine; its failure leaves the
// machine in complete so the submit stays retryable.
func (m *Machine) Complete() bool {
	return m.step == StepComplete
}
