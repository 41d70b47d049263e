package flow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bloom-be/pkg/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	saved   map[string]questionnaire.AnswerValue
	order   []string
	failFor map[string]error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		saved:   make(map[string]questionnaire.AnswerValue),
		failFor: make(map[string]error),
	}
}

func (s *recordingSink) SaveAnswer(_ context.Context, questionID string, value questionnaire.AnswerValue) error {
	if err, ok := s.failFor[questionID]; ok {
		return err
	}
	s.saved[questionID] = value
	s.order = append(s.order, questionID)
	return nil
}

func testCatalog(total, boundary int) questionnaire.Catalog {
	catalog := make(questionnaire.Catalog, total)
	for i := 0; i < total; i++ {
		catalog[i] = questionnaire.Question{
			ID:                     fmt.Sprintf("q%d", i),
			Order:                  i,
			Prompt:                 fmt.Sprintf("Question %d", i),
			InputType:              questionnaire.InputText,
			InsertsTransitionAfter: i == boundary,
		}
		if i > boundary {
			catalog[i].Section = questionnaire.SectionPreference
		} else {
			catalog[i].Section = questionnaire.SectionProfile
		}
	}
	return catalog
}

func TestInitialState(t *testing.T) {
	catalog := testCatalog(5, 2)

	t.Run("zero photos starts at photo step", func(t *testing.T) {
		m, err := New(catalog, 0, newRecordingSink())
		require.NoError(t, err)
		assert.Equal(t, StepPhotos, m.Snapshot().Step)
	})

	t.Run("one photo skips to questionnaire start", func(t *testing.T) {
		m, err := New(catalog, 1, newRecordingSink())
		require.NoError(t, err)
		snap := m.Snapshot()
		assert.Equal(t, StepQuestionnaire, snap.Step)
		assert.Equal(t, 0, snap.Index)
	})

	t.Run("catalog without boundary is rejected", func(t *testing.T) {
		bad := testCatalog(5, 2)
		bad[2].InsertsTransitionAfter = false
		_, err := New(bad, 1, newRecordingSink())
		assert.Error(t, err)
	})

	t.Run("boundary on the last question is rejected", func(t *testing.T) {
		bad := testCatalog(3, 1)
		bad[1].InsertsTransitionAfter = false
		bad[2].InsertsTransitionAfter = true
		_, err := New(bad, 1, newRecordingSink())
		assert.Error(t, err)
	})
}

func TestNextAdvancesUntilBoundary(t *testing.T) {
	boundary := 2
	m, err := New(testCatalog(6, boundary), 1, newRecordingSink())
	require.NoError(t, err)

	// For every index up to the boundary a valid Next advances to i+1,
	// except at the boundary where the step flips without moving the index.
	for i := 0; i <= boundary; i++ {
		require.Equal(t, i, m.Snapshot().Index)
		require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("answer")))

		snap := m.Snapshot()
		if i == boundary {
			assert.Equal(t, StepTransition, snap.Step)
			assert.Equal(t, boundary, snap.Index, "boundary Next must not move the index")
		} else {
			assert.Equal(t, StepQuestionnaire, snap.Step)
			assert.Equal(t, i+1, snap.Index)
		}
	}
}

func TestBackInvertsNext(t *testing.T) {
	m, err := New(testCatalog(6, 4), 1, newRecordingSink())
	require.NoError(t, err)

	// Walk forward below the boundary, then back() must retrace exactly.
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("x")))
	}
	assert.Equal(t, 3, m.Snapshot().Index)

	for i := 3; i > 0; i-- {
		require.NoError(t, m.Back())
		assert.Equal(t, i-1, m.Snapshot().Index)
		assert.Equal(t, StepQuestionnaire, m.Snapshot().Step)
	}

	t.Run("back at index zero returns to photos", func(t *testing.T) {
		require.NoError(t, m.Back())
		assert.Equal(t, StepPhotos, m.Snapshot().Step)
	})
}

func TestTransitionScreen(t *testing.T) {
	boundary := 1
	m, err := New(testCatalog(4, boundary), 1, newRecordingSink())
	require.NoError(t, err)

	require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("a")))
	require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("b")))
	require.Equal(t, StepTransition, m.Snapshot().Step)

	t.Run("continue enters the section after the boundary", func(t *testing.T) {
		require.NoError(t, m.ContinueFromTransition())
		snap := m.Snapshot()
		assert.Equal(t, StepQuestionnaire, snap.Step)
		assert.Equal(t, boundary+1, snap.Index)
	})

	t.Run("back immediately after transition returns to it", func(t *testing.T) {
		require.NoError(t, m.Back())
		assert.Equal(t, StepTransition, m.Snapshot().Step)
		assert.Equal(t, boundary+1, m.Snapshot().Index)
	})

	t.Run("transition back lands on the boundary question", func(t *testing.T) {
		require.NoError(t, m.BackFromTransition())
		snap := m.Snapshot()
		assert.Equal(t, StepQuestionnaire, snap.Step)
		assert.Equal(t, boundary, snap.Index)
	})
}

func TestInvalidAnswerBlocksNavigation(t *testing.T) {
	sink := newRecordingSink()
	m, err := New(testCatalog(4, 1), 1, sink)
	require.NoError(t, err)

	err = m.Next(context.Background(), questionnaire.TextValue("   "))
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	assert.Equal(t, 0, m.Snapshot().Index, "no transition on invalid answer")
	assert.Empty(t, sink.saved, "nothing persisted on invalid answer")
}

func TestSaveFailureDoesNotBlockNavigation(t *testing.T) {
	// Writes are optimistic: a rejected save is reported as a warning but
	// the user keeps moving. There is no rollback.
	sink := newRecordingSink()
	sink.failFor["q0"] = errors.New("connection reset")

	m, err := New(testCatalog(4, 1), 1, sink)
	require.NoError(t, err)

	err = m.Next(context.Background(), questionnaire.TextValue("hello"))
	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "q0", saveErr.QuestionID)
	assert.Equal(t, 1, m.Snapshot().Index, "navigation proceeds despite the failed save")
}

func TestFullOnboardingWalk(t *testing.T) {
	// Fresh user with zero photos walks the whole flow: photos ->
	// questionnaire -> one transition -> questionnaire -> complete.
	total, boundary := 6, 2
	sink := newRecordingSink()
	m, err := New(testCatalog(total, boundary), 0, sink)
	require.NoError(t, err)
	require.Equal(t, StepPhotos, m.Snapshot().Step)

	require.ErrorIs(t, m.ContinueFromPhotos(0), ErrNeedPhoto)
	require.NoError(t, m.ContinueFromPhotos(1))

	transitions := 0
	for !m.Complete() {
		if m.Snapshot().Step == StepTransition {
			transitions++
			require.NoError(t, m.ContinueFromTransition())
			continue
		}
		q := m.Current()
		require.NotNil(t, q)
		require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("answer for "+q.ID)))
	}

	assert.Equal(t, 1, transitions, "transition screen shows exactly once")
	assert.Len(t, sink.saved, total, "every question persisted once")
	assert.Equal(t, StepComplete, m.Snapshot().Step)
}

func TestProgress(t *testing.T) {
	m, err := New(testCatalog(4, 1), 1, newRecordingSink())
	require.NoError(t, err)

	current, total, percent := m.Snapshot().Progress()
	assert.Equal(t, 0, current)
	assert.Equal(t, 4, total)
	assert.Equal(t, 0, percent)

	require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("a")))
	current, _, percent = m.Snapshot().Progress()
	assert.Equal(t, 1, current)
	assert.Equal(t, 25, percent)

	// Walk to completion.
	require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("b")))
	require.NoError(t, m.ContinueFromTransition())
	require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("c")))
	require.NoError(t, m.Next(context.Background(), questionnaire.TextValue("d")))

	current, _, percent = m.Snapshot().Progress()
	assert.Equal(t, 4, current)
	assert.Equal(t, 100, percent)
}
