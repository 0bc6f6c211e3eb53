package model

// DimensionScores holds the per-section scores and the weighted composite,
// all on a 0-100 scale. Derived deterministically from a corrected answer
// vector; no hidden state.
type DimensionScores struct {
	PerSection map[Section]float64 `json:"perSection" bson:"perSection"`
	Composite  float64             `json:"composite" bson:"composite"`
}

// Section returns the score for one section (0 when absent).
func (d DimensionScores) Section(s Section) float64 {
	return d.PerSection[s]
}
