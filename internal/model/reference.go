package model

import "time"

// ReferenceVector is one accepted answer vector kept for the outlier
// check's reference corpus.
type ReferenceVector struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	SubmissionID string    `json:"submissionId" bson:"submissionId"`
	Vector       []float64 `json:"vector" bson:"vector"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
