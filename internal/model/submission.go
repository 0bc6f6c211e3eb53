package model

import "time"

// SubmissionStatus tracks what the pipeline did with a submission.
type SubmissionStatus string

const (
	StatusAccepted SubmissionStatus = "accepted" // scored (accept or review verdict)
	StatusRejected SubmissionStatus = "rejected" // quality gate short-circuit, no scores
)

// Submission is one respondent's raw questionnaire data plus the derived
// assessment. Answers and ResponseTimes are immutable once stored.
type Submission struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	UserID        string            `json:"userId" bson:"userId"`
	Answers       []int             `json:"answers" bson:"answers"`
	ResponseTimes []float64         `json:"responseTimes,omitempty" bson:"responseTimes,omitempty"`
	Status        SubmissionStatus  `json:"status" bson:"status"`
	Result        *AssessmentResult `json:"result,omitempty" bson:"result,omitempty"`
	SubmittedAt   time.Time         `json:"submittedAt" bson:"submittedAt"`
}

// AssessmentResult is the full derived output for an accepted submission.
// For a rejected submission only Quality and Message are set.
type AssessmentResult struct {
	Quality         QualityVerdict   `json:"quality" bson:"quality"`
	StyleCorrection *StyleCorrection `json:"styleCorrection,omitempty" bson:"styleCorrection,omitempty"`
	Scores          *DimensionScores `json:"scores,omitempty" bson:"scores,omitempty"`
	ProfileType     ProfileType      `json:"profileType,omitempty" bson:"profileType,omitempty"`
	Strengths       []StrengthResult `json:"strengths,omitempty" bson:"strengths,omitempty"`
	Message         string           `json:"message,omitempty" bson:"message,omitempty"`
}

// Rejected reports whether the quality gate rejected the submission.
func (r *AssessmentResult) Rejected() bool {
	return r.Quality.Recommendation == RecommendReject
}
