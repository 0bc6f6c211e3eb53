package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btyesteem/internal/catalog"
	"btyesteem/internal/model"
)

func newScorer(t *testing.T) *DimensionScorer {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewDimensionScorer(cat)
}

func TestScoreAllMidpoint(t *testing.T) {
	s := newScorer(t)

	scores, err := s.Score(uniformAnswers(3))
	require.NoError(t, err)

	// Straight items contribute 3, reverse items 2.
	assert.InDelta(t, 62.5, scores.Section(model.SectionCore), 1e-9)       // 5 reverse
	assert.InDelta(t, 65.0, scores.Section(model.SectionCompassion), 1e-9) // 4 reverse
	assert.InDelta(t, 60.0, scores.Section(model.SectionStability), 1e-9)  // 6 reverse
	assert.InDelta(t, 62.5, scores.Section(model.SectionGrowth), 1e-9)     // 5 reverse
	assert.InDelta(t, 75.0, scores.Section(model.SectionSocial), 1e-9)     // none
	assert.InDelta(t, 64.375, scores.Composite, 1e-9)
}

func TestScoreBoundsAndReverseCoding(t *testing.T) {
	s := newScorer(t)

	t.Run("composite stays in range", func(t *testing.T) {
		for _, a := range [][]int{uniformAnswers(1), uniformAnswers(2), uniformAnswers(4), variedAnswers()} {
			scores, err := s.Score(a)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, scores.Composite, 0.0)
			assert.LessOrEqual(t, scores.Composite, 100.0)
			for _, sec := range model.Sections {
				assert.GreaterOrEqual(t, scores.Section(sec), 0.0)
				assert.LessOrEqual(t, scores.Section(sec), 100.0)
			}
		}
	})

	t.Run("reverse coding applied exactly once", func(t *testing.T) {
		// All 4s: straight items contribute 4, reverse items 1.
		scores, err := s.Score(uniformAnswers(4))
		require.NoError(t, err)
		// Social has no reverse items: 10*4/40 -> 100.
		assert.InDelta(t, 100.0, scores.Section(model.SectionSocial), 1e-9)
		// Stability has 6: (4*4 + 6*1)/40 -> 55.
		assert.InDelta(t, 55.0, scores.Section(model.SectionStability), 1e-9)
	})

	t.Run("round trip identity", func(t *testing.T) {
		for v := model.ScaleMin; v <= model.ScaleMax; v++ {
			assert.Equal(t, v, model.ReverseCode(model.ReverseCode(v)))
		}
	})
}

func TestScoreInvalidInput(t *testing.T) {
	s := newScorer(t)

	_, err := s.Score(make([]int, 10))
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := uniformAnswers(3)
	bad[0] = 0
	_, err = s.Score(bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
