package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"btyesteem/internal/model"
	"btyesteem/internal/repository"
)

// messageOffsets is the drip sequence in send order: offsets are days
// from the assessment start (minutes in test mode).
var messageOffsets = []struct {
	kind   model.MessageKind
	offset int
}{
	{model.MessageDiagnosisComplete, 0},
	{model.MessageWeek1Start, 1},
	{model.MessageWeek2Start, 8},
	{model.MessageWeek3Start, 15},
	{model.MessageWeek4Start, 22},
	{model.MessageRetestInvite, 27},
}

// ScheduleService plans the post-assessment message sequence and
// manages the persisted queue. It owns timing and payload selection
// only; wording and transport belong to the delivery layer.
type ScheduleService struct {
	repo       repository.ScheduleRepo
	retestLink string
	testMode   bool
	logger     *zap.Logger
}

// NewScheduleService creates a new schedule service. In test mode the
// day offsets are compressed to minutes.
func NewScheduleService(repo repository.ScheduleRepo, retestLink string, testMode bool, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		repo:       repo,
		retestLink: retestLink,
		testMode:   testMode,
		logger:     logger,
	}
}

// Plan builds and persists the six message descriptors for an accepted
// submission. The submission must carry scores; rejected submissions
// get no schedule.
func (s *ScheduleService) Plan(ctx context.Context, submission *model.Submission, startAt time.Time) ([]*model.MessageDescriptor, error) {
	result := submission.Result
	focus := focusOrder(result.Scores)

	descriptors := make([]*model.MessageDescriptor, 0, len(messageOffsets))
	weekly := 0
	for _, m := range messageOffsets {
		d := &model.MessageDescriptor{
			SubmissionID: submission.ID,
			UserID:       submission.UserID,
			Kind:         m.kind,
			SendAt:       startAt.Add(s.offsetDuration(m.offset)),
			Status:       model.MessagePending,
		}

		switch m.kind {
		case model.MessageDiagnosisComplete:
			d.Payload = model.MessagePayload{
				ProfileType: result.ProfileType,
				Composite:   result.Scores.Composite,
				Strengths:   result.Strengths,
			}
		case model.MessageRetestInvite:
			d.Payload = model.MessagePayload{
				ProfileType: result.ProfileType,
				RetestLink:  s.retestLink,
			}
		default:
			// Weekly messages each work on the next weakest dimension.
			section := focus[weekly%len(focus)]
			weekly++
			d.Payload = model.MessagePayload{
				ProfileType:  result.ProfileType,
				FocusSection: section,
				FocusScore:   result.Scores.Section(section),
			}
		}
		descriptors = append(descriptors, d)
	}

	if err := s.repo.CreateMany(ctx, descriptors); err != nil {
		return nil, err
	}
	s.logger.Info("schedule planned",
		zap.String("submissionId", submission.ID),
		zap.Int("messages", len(descriptors)),
		zap.Bool("testMode", s.testMode))
	return descriptors, nil
}

func (s *ScheduleService) offsetDuration(offset int) time.Duration {
	if s.testMode {
		return time.Duration(offset) * time.Minute
	}
	return time.Duration(offset) * 24 * time.Hour
}

// focusOrder returns the sections sorted weakest first; questionnaire
// order breaks ties so the plan is deterministic.
func focusOrder(scores *model.DimensionScores) []model.Section {
	sections := make([]model.Section, len(model.Sections))
	copy(sections, model.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return scores.Section(sections[i]) < scores.Section(sections[j])
	})
	return sections
}

// ListAll returns queued descriptors, optionally filtered by status.
func (s *ScheduleService) ListAll(ctx context.Context, status model.MessageStatus, limit int64) ([]*model.MessageDescriptor, error) {
	return s.repo.List(ctx, status, limit)
}

// ListBySubmission returns the schedule for one submission in send order.
func (s *ScheduleService) ListBySubmission(ctx context.Context, submissionID string) ([]*model.MessageDescriptor, error) {
	return s.repo.GetBySubmissionID(ctx, submissionID)
}

// Cancel cancels a pending descriptor. Returns nil when the descriptor
// does not exist or was already sent or cancelled.
func (s *ScheduleService) Cancel(ctx context.Context, id string) (*model.MessageDescriptor, error) {
	return s.repo.Cancel(ctx, id)
}
