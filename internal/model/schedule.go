package model

import "time"

// MessageKind identifies one message in the post-assessment drip sequence.
type MessageKind string

const (
	MessageDiagnosisComplete MessageKind = "diagnosis_complete" // day 0
	MessageWeek1Start        MessageKind = "week_1_start"       // day 1
	MessageWeek2Start        MessageKind = "week_2_start"       // day 8
	MessageWeek3Start        MessageKind = "week_3_start"       // day 15
	MessageWeek4Start        MessageKind = "week_4_start"       // day 22
	MessageRetestInvite      MessageKind = "retest_invite"      // day 27
)

// MessageStatus is the delivery-queue state of a descriptor. The core
// only plans and records; an external delivery worker flips the status.
type MessageStatus string

const (
	MessagePending   MessageStatus = "pending"
	MessageCancelled MessageStatus = "cancelled"
	MessageSent      MessageStatus = "sent"
)

// MessagePayload is the data subset a scheduled message needs. Fields are
// filled per kind; the template/delivery layer owns all wording.
type MessagePayload struct {
	ProfileType  ProfileType      `json:"profileType,omitempty" bson:"profileType,omitempty"`
	Composite    float64          `json:"composite,omitempty" bson:"composite,omitempty"`
	FocusSection Section          `json:"focusSection,omitempty" bson:"focusSection,omitempty"`
	FocusScore   float64          `json:"focusScore,omitempty" bson:"focusScore,omitempty"`
	Strengths    []StrengthResult `json:"strengths,omitempty" bson:"strengths,omitempty"`
	RetestLink   string           `json:"retestLink,omitempty" bson:"retestLink,omitempty"`
}

// MessageDescriptor is one planned message in the drip sequence.
type MessageDescriptor struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	SubmissionID string         `json:"submissionId" bson:"submissionId"`
	UserID       string         `json:"userId" bson:"userId"`
	Kind         MessageKind    `json:"kind" bson:"kind"`
	SendAt       time.Time      `json:"sendAt" bson:"sendAt"`
	Status       MessageStatus  `json:"status" bson:"status"`
	Payload      MessagePayload `json:"payload" bson:"payload"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
}
