package model

// StrengthCandidate is one entry of the static strength catalog: a named
// pattern scored against a subset of item indices.
type StrengthCandidate struct {
	Key             string  `json:"key" bson:"key"`
	DisplayName     string  `json:"displayName" bson:"displayName"`
	Detail          string  `json:"detail" bson:"detail"`
	EvidenceIndices []int   `json:"evidenceIndices" bson:"evidenceIndices"`
	Threshold       float64 `json:"threshold" bson:"threshold"`
}

// StrengthResult is a detected strength with its observed evidence score.
type StrengthResult struct {
	Key             string  `json:"key" bson:"key"`
	DisplayName     string  `json:"displayName" bson:"displayName"`
	Detail          string  `json:"detail" bson:"detail"`
	EvidenceIndices []int   `json:"evidenceIndices" bson:"evidenceIndices"`
	ObservedScore   float64 `json:"observedScore" bson:"observedScore"`
	MetThreshold    bool    `json:"metThreshold" bson:"metThreshold"`
}
