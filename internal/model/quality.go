package model

// QualityFlag marks one careless-responding pattern detected in a submission.
type QualityFlag string

const (
	FlagSpeeding       QualityFlag = "speeding"        // answered too fast to have read the items
	FlagLongstring     QualityFlag = "longstring"      // long run of identical answers
	FlagParityMismatch QualityFlag = "parity_mismatch" // even/odd item subsets disagree
	FlagOutlier        QualityFlag = "outlier"         // Mahalanobis outlier vs reference corpus
)

// Recommendation is the quality gate's verdict on a submission.
type Recommendation string

const (
	RecommendAccept Recommendation = "accept"
	RecommendReview Recommendation = "review"
	RecommendReject Recommendation = "reject"
)

// QualityDetails carries the raw metrics behind each check, for the
// admin quality report.
type QualityDetails struct {
	AvgResponseTime    float64 `json:"avgResponseTime" bson:"avgResponseTime"`
	MaxConsecutiveFast int     `json:"maxConsecutiveFast" bson:"maxConsecutiveFast"`
	FastRatio          float64 `json:"fastRatio" bson:"fastRatio"`
	MaxStreak          int     `json:"maxStreak" bson:"maxStreak"`
	ParityCorrelation  float64 `json:"parityCorrelation" bson:"parityCorrelation"`
	ParityDefined      bool    `json:"parityDefined" bson:"parityDefined"`
	MahalanobisSquared float64 `json:"mahalanobisSquared,omitempty" bson:"mahalanobisSquared,omitempty"`
	OutlierThreshold   float64 `json:"outlierThreshold,omitempty" bson:"outlierThreshold,omitempty"`
	OutlierChecked     bool    `json:"outlierChecked" bson:"outlierChecked"`
}

// QualityVerdict is the quality gate output. It is derived per submission
// and recomputed rather than edited.
type QualityVerdict struct {
	Score          float64        `json:"score" bson:"score"` // 0-1, higher is cleaner
	Flags          []QualityFlag  `json:"flags" bson:"flags"`
	Recommendation Recommendation `json:"recommendation" bson:"recommendation"`
	Details        QualityDetails `json:"details" bson:"details"`
}

// HasFlag reports whether the verdict contains the given flag.
func (v *QualityVerdict) HasFlag(flag QualityFlag) bool {
	for _, f := range v.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
