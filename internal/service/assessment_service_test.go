package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"btyesteem/internal/assessment"
	"btyesteem/internal/catalog"
	"btyesteem/internal/model"
)

func newAssessmentService(t *testing.T) (*AssessmentService, *fakeSubmissionRepo, *fakeReferenceRepo, *fakeScheduleRepo, *fakeResultCache) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	submissions := newFakeSubmissionRepo()
	reference := &fakeReferenceRepo{}
	scheduleRepo := &fakeScheduleRepo{}
	resultCache := newFakeResultCache()
	logger := zap.NewNop()

	schedule := NewScheduleService(scheduleRepo, "https://example.com/retest", false, logger)
	svc := NewAssessmentService(assessment.NewPipeline(cat), submissions, reference, resultCache, schedule, logger)
	return svc, submissions, reference, scheduleRepo, resultCache
}

func cleanAnswers() []int {
	a := make([]int, model.ItemCount)
	for i := range a {
		a[i] = 1 + (i/2)%4
	}
	return a
}

func slowTimes() []float64 {
	ts := make([]float64, model.ItemCount)
	for i := range ts {
		ts[i] = 3.0
	}
	return ts
}

func TestSubmitAccepted(t *testing.T) {
	svc, submissions, reference, scheduleRepo, _ := newAssessmentService(t)

	submission, descriptors, err := svc.Submit(context.Background(), "user-1", cleanAnswers(), slowTimes())
	require.NoError(t, err)

	assert.Equal(t, model.StatusAccepted, submission.Status)
	assert.NotEmpty(t, submission.ID)
	require.NotNil(t, submission.Result)
	assert.Equal(t, model.RecommendAccept, submission.Result.Quality.Recommendation)
	require.NotNil(t, submission.Result.Scores)
	assert.Len(t, submission.Result.Strengths, 3)

	// Persisted, corpus extended, schedule planned.
	stored, err := submissions.GetByID(context.Background(), submission.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Len(t, reference.vectors, 1)
	assert.Len(t, descriptors, 6)
	assert.Len(t, scheduleRepo.descriptors, 6)
}

func TestSubmitRejected(t *testing.T) {
	svc, submissions, reference, scheduleRepo, _ := newAssessmentService(t)

	// All-identical answers at speed: longstring + speeding rejects.
	answers := make([]int, model.ItemCount)
	times := make([]float64, model.ItemCount)
	for i := range answers {
		answers[i] = 3
		times[i] = 0.5
	}

	submission, descriptors, err := svc.Submit(context.Background(), "user-1", answers, times)
	require.NoError(t, err)

	assert.Equal(t, model.StatusRejected, submission.Status)
	require.NotNil(t, submission.Result)
	assert.True(t, submission.Result.Rejected())
	assert.NotEmpty(t, submission.Result.Message)
	assert.Nil(t, submission.Result.Scores)

	// Stored for the quality report, but no schedule and no corpus entry.
	stored, err := submissions.GetByID(context.Background(), submission.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Empty(t, descriptors)
	assert.Empty(t, scheduleRepo.descriptors)
	assert.Empty(t, reference.vectors)
}

func TestSubmitInvalidInput(t *testing.T) {
	svc, _, _, _, _ := newAssessmentService(t)

	_, _, err := svc.Submit(context.Background(), "user-1", []int{1, 2, 3}, nil)
	assert.ErrorIs(t, err, assessment.ErrInvalidInput)
}

func TestGetSubmissionCacheFirst(t *testing.T) {
	svc, submissions, _, _, resultCache := newAssessmentService(t)

	submission, _, err := svc.Submit(context.Background(), "user-1", cleanAnswers(), nil)
	require.NoError(t, err)

	// Remove from the repo: a cache hit must still serve it.
	delete(submissions.byID, submission.ID)
	got, err := svc.GetSubmission(context.Background(), submission.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, submission.ID, got.ID)

	// Remove from the cache too: now it is gone.
	delete(resultCache.submissions, submission.ID)
	got, err = svc.GetSubmission(context.Background(), submission.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetQualityVerdict(t *testing.T) {
	svc, _, _, _, _ := newAssessmentService(t)

	submission, _, err := svc.Submit(context.Background(), "user-1", cleanAnswers(), slowTimes())
	require.NoError(t, err)

	verdict, err := svc.GetQualityVerdict(context.Background(), submission.ID)
	require.NoError(t, err)
	require.NotNil(t, verdict)
	assert.Equal(t, model.RecommendAccept, verdict.Recommendation)

	verdict, err = svc.GetQualityVerdict(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, verdict)
}
