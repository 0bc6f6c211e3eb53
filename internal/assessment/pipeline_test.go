package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btyesteem/internal/catalog"
	"btyesteem/internal/model"
)

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewPipeline(cat)
}

func TestPipelineGolden(t *testing.T) {
	p := newPipeline(t)

	// An all-3 vector trips the longstring check into the review band
	// but still gets scored.
	result, err := p.Run(uniformAnswers(3), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, model.RecommendReview, result.Quality.Recommendation)
	assert.True(t, result.Quality.HasFlag(model.FlagLongstring))
	assert.False(t, result.Rejected())

	require.NotNil(t, result.StyleCorrection)
	assert.Contains(t, result.StyleCorrection.AppliedCorrections, model.StyleMidpoint)
	assert.Equal(t, uniformAnswers(3), result.StyleCorrection.CorrectedAnswers)

	require.NotNil(t, result.Scores)
	assert.InDelta(t, 64.375, result.Scores.Composite, 1e-9)
	assert.Equal(t, model.ProfileBalanceSeeker, result.ProfileType)

	require.Len(t, result.Strengths, 3)
	assert.Equal(t, "resilience", result.Strengths[0].Key)
	assert.Equal(t, "empathy", result.Strengths[1].Key)
	assert.Equal(t, "self_awareness", result.Strengths[2].Key)
	for _, s := range result.Strengths {
		assert.InDelta(t, 3.0, s.ObservedScore, 1e-9)
	}
}

func TestPipelineRejectShortCircuits(t *testing.T) {
	p := newPipeline(t)

	// Speeding plus longstring rejects; no scoring happens.
	result, err := p.Run(uniformAnswers(3), uniformTimes(0.5), nil)
	require.NoError(t, err)

	assert.True(t, result.Rejected())
	assert.NotEmpty(t, result.Message)
	assert.Nil(t, result.StyleCorrection)
	assert.Nil(t, result.Scores)
	assert.Empty(t, result.ProfileType)
	assert.Empty(t, result.Strengths)
}

func TestPipelineCleanSubmission(t *testing.T) {
	p := newPipeline(t)

	result, err := p.Run(variedAnswers(), uniformTimes(3.0), nil)
	require.NoError(t, err)

	assert.Equal(t, model.RecommendAccept, result.Quality.Recommendation)
	assert.False(t, result.Rejected())
	assert.Empty(t, result.Message)
	require.NotNil(t, result.Scores)
	assert.NotEmpty(t, result.ProfileType)
	require.Len(t, result.Strengths, 3)
}

func TestPipelineInvalidInput(t *testing.T) {
	p := newPipeline(t)

	_, err := p.Run(make([]int, 5), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPipelineIsDeterministic(t *testing.T) {
	p := newPipeline(t)

	first, err := p.Run(variedAnswers(), uniformTimes(3.0), nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := p.Run(variedAnswers(), uniformTimes(3.0), nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
