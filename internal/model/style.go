package model

// ResponseStyle names a systematic response-style bias.
type ResponseStyle string

const (
	StyleExtreme      ResponseStyle = "extreme"      // answers pile up on 1 and 4
	StyleMidpoint     ResponseStyle = "midpoint"     // answers pile up on 2 and 3
	StyleAcquiescence ResponseStyle = "acquiescence" // agrees regardless of item direction
)

// StyleScores reports the observed magnitude of each style, whether or
// not a correction was applied.
type StyleScores struct {
	Extreme      float64 `json:"extreme" bson:"extreme"`
	Midpoint     float64 `json:"midpoint" bson:"midpoint"`
	Acquiescence float64 `json:"acquiescence" bson:"acquiescence"`
}

// StyleCorrection is the style corrector output. CorrectedAnswers is a
// new vector; the original submission is never mutated.
type StyleCorrection struct {
	CorrectedAnswers   []int           `json:"correctedAnswers" bson:"correctedAnswers"`
	AppliedCorrections []ResponseStyle `json:"appliedCorrections" bson:"appliedCorrections"`
	StyleScores        StyleScores     `json:"styleScores" bson:"styleScores"`
}
