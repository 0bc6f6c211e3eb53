package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"btyesteem/internal/assessment"
	"btyesteem/internal/cache"
	"btyesteem/internal/model"
	"btyesteem/internal/repository"
)

// referenceCorpusSize caps how many recent accepted vectors feed the
// outlier check.
const referenceCorpusSize = 2000

// AssessmentService runs submissions through the scoring pipeline and
// owns persistence, caching, the reference corpus and schedule planning
// around it.
type AssessmentService struct {
	pipeline    *assessment.Pipeline
	submissions repository.SubmissionRepo
	reference   repository.ReferenceRepo
	cache       cache.ResultCache
	schedule    *ScheduleService
	logger      *zap.Logger
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(
	pipeline *assessment.Pipeline,
	submissions repository.SubmissionRepo,
	reference repository.ReferenceRepo,
	resultCache cache.ResultCache,
	schedule *ScheduleService,
	logger *zap.Logger,
) *AssessmentService {
	return &AssessmentService{
		pipeline:    pipeline,
		submissions: submissions,
		reference:   reference,
		cache:       resultCache,
		schedule:    schedule,
		logger:      logger,
	}
}

// Submit scores a questionnaire and persists the outcome. A quality
// rejection is stored and returned like any other result; only
// malformed input is an error. Accepted submissions also extend the
// reference corpus and get a message schedule.
func (s *AssessmentService) Submit(ctx context.Context, userID string, answers []int, responseTimes []float64) (*model.Submission, []*model.MessageDescriptor, error) {
	reference, err := s.loadReference(ctx)
	if err != nil {
		// The outlier check degrades to a skip; don't block scoring.
		s.logger.Warn("reference corpus unavailable", zap.Error(err))
		reference = nil
	}

	result, err := s.pipeline.Run(answers, responseTimes, reference)
	if err != nil {
		return nil, nil, err
	}

	submission := &model.Submission{
		ID:            uuid.New().String(),
		UserID:        userID,
		Answers:       answers,
		ResponseTimes: responseTimes,
		Status:        model.StatusAccepted,
		Result:        result,
		SubmittedAt:   time.Now(),
	}
	if result.Rejected() {
		submission.Status = model.StatusRejected
	}

	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, nil, err
	}
	if err := s.cache.SetSubmission(ctx, submission); err != nil {
		s.logger.Warn("submission cache write failed", zap.Error(err))
	}

	if result.Rejected() {
		s.logger.Info("submission rejected",
			zap.String("submissionId", submission.ID),
			zap.Any("flags", result.Quality.Flags))
		return submission, nil, nil
	}

	s.extendReference(ctx, submission)

	descriptors, err := s.schedule.Plan(ctx, submission, submission.SubmittedAt)
	if err != nil {
		// The result stands even when planning fails.
		s.logger.Error("schedule planning failed",
			zap.String("submissionId", submission.ID), zap.Error(err))
		descriptors = nil
	}

	s.logger.Info("submission scored",
		zap.String("submissionId", submission.ID),
		zap.String("profile", string(result.ProfileType)),
		zap.Float64("composite", result.Scores.Composite),
		zap.String("recommendation", string(result.Quality.Recommendation)))
	return submission, descriptors, nil
}

// GetSubmission returns a stored submission, cache-first. Nil when the
// ID is unknown.
func (s *AssessmentService) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	cached, err := s.cache.GetSubmission(ctx, id)
	if err != nil {
		s.logger.Warn("submission cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil || submission == nil {
		return submission, err
	}
	if err := s.cache.SetSubmission(ctx, submission); err != nil {
		s.logger.Warn("submission cache write failed", zap.Error(err))
	}
	return submission, nil
}

// GetQualityVerdict returns the stored verdict for a submission, or nil
// when the submission is unknown.
func (s *AssessmentService) GetQualityVerdict(ctx context.Context, submissionID string) (*model.QualityVerdict, error) {
	submission, err := s.GetSubmission(ctx, submissionID)
	if err != nil || submission == nil {
		return nil, err
	}
	if submission.Result == nil {
		return nil, nil
	}
	return &submission.Result.Quality, nil
}

// loadReference fetches the recent accepted vectors, cache-first.
func (s *AssessmentService) loadReference(ctx context.Context) ([][]float64, error) {
	vectors, err := s.cache.GetReferenceVectors(ctx)
	if err != nil {
		s.logger.Warn("reference cache read failed", zap.Error(err))
	}
	if vectors != nil {
		return vectors, nil
	}

	vectors, err = s.reference.Latest(ctx, referenceCorpusSize)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetReferenceVectors(ctx, vectors); err != nil {
		s.logger.Warn("reference cache write failed", zap.Error(err))
	}
	return vectors, nil
}

// extendReference adds an accepted raw vector to the corpus and drops
// the cached copy.
func (s *AssessmentService) extendReference(ctx context.Context, submission *model.Submission) {
	vector := make([]float64, len(submission.Answers))
	for i, a := range submission.Answers {
		vector[i] = float64(a)
	}
	err := s.reference.Add(ctx, &model.ReferenceVector{
		SubmissionID: submission.ID,
		Vector:       vector,
	})
	if err != nil {
		s.logger.Warn("reference corpus append failed", zap.Error(err))
		return
	}
	if err := s.cache.InvalidateReferenceVectors(ctx); err != nil {
		s.logger.Warn("reference cache invalidation failed", zap.Error(err))
	}
}
