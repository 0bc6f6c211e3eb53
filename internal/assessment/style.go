package assessment

import (
	"math"

	"github.com/montanaflynn/stats"

	"btyesteem/internal/model"
)

// Style-detection parameters.
const (
	styleTriggerShare = 0.7 // share of answers in a pattern that triggers a correction

	extremeMinStdDev = 0.1  // below this the extreme remap is skipped (no spread to work with)
	extremeRemapMid  = 2.5  // scale midpoint the z-remap is centered on
	extremeRemapStep = 0.75 // scale units per z

	midpointPush    = 0.5 // push applied to answers away from the respondent's mean
	midpointNudge   = 0.3 // push applied to answers sitting exactly on the mean
	acquiescenceSum = model.ScaleMin + model.ScaleMax // expected raw sum of a mixed-direction pair
	acquiescenceTol = 1                               // allowed deviation from the expected sum
)

// StyleCorrector detects and compensates systematic response styles
// (extreme, midpoint, acquiescence) before scoring. Pure; the input
// vector is never mutated.
type StyleCorrector struct{}

// NewStyleCorrector creates a style corrector.
func NewStyleCorrector() *StyleCorrector {
	return &StyleCorrector{}
}

// Correct measures all three style scores on the raw vector and returns
// a corrected copy. At most one of the extreme/midpoint transforms can
// fire (their trigger shares cannot both reach 70%); acquiescence
// flipping is applied after, since it only touches reverse-coded items.
func (c *StyleCorrector) Correct(answers []int, reverseIndices []int) (model.StyleCorrection, error) {
	if err := validateAnswers(answers); err != nil {
		return model.StyleCorrection{}, err
	}

	reverse := make(map[int]bool, len(reverseIndices))
	for _, i := range reverseIndices {
		reverse[i] = true
	}

	scores := model.StyleScores{
		Extreme:      share(answers, model.ScaleMin, model.ScaleMax),
		Midpoint:     share(answers, model.ScaleMin+1, model.ScaleMax-1),
		Acquiescence: acquiescenceScore(answers, reverse),
	}

	corrected := make([]int, len(answers))
	copy(corrected, answers)
	applied := make([]model.ResponseStyle, 0, 2)

	switch {
	case scores.Extreme >= styleTriggerShare:
		if remapExtreme(corrected) {
			applied = append(applied, model.StyleExtreme)
		}
	case scores.Midpoint >= styleTriggerShare:
		inflateMidpoint(corrected)
		applied = append(applied, model.StyleMidpoint)
	}

	if scores.Acquiescence >= styleTriggerShare {
		for i := range corrected {
			if reverse[i] {
				corrected[i] = model.ReverseCode(corrected[i])
			}
		}
		applied = append(applied, model.StyleAcquiescence)
	}

	return model.StyleCorrection{
		CorrectedAnswers:   corrected,
		AppliedCorrections: applied,
		StyleScores:        scores,
	}, nil
}

// share returns the fraction of answers equal to a or b.
func share(answers []int, a, b int) float64 {
	n := 0
	for _, v := range answers {
		if v == a || v == b {
			n++
		}
	}
	return float64(n) / float64(len(answers))
}

// acquiescenceScore looks at adjacent item pairs where exactly one item
// is reverse-coded. A respondent answering on content produces raw sums
// near ScaleMin+ScaleMax on such pairs; a respondent agreeing with
// everything does not. The score is the violating share of those pairs.
func acquiescenceScore(answers []int, reverse map[int]bool) float64 {
	pairs, violations := 0, 0
	for i := 0; i+1 < len(answers); i++ {
		if reverse[i] == reverse[i+1] {
			continue
		}
		pairs++
		sum := answers[i] + answers[i+1]
		if abs(sum-acquiescenceSum) > acquiescenceTol {
			violations++
		}
	}
	if pairs == 0 {
		return 0
	}
	return float64(violations) / float64(pairs)
}

// remapExtreme re-expresses each answer as a z-score within the
// respondent's own vector and maps it back onto the scale around the
// midpoint, pulling mass off the endpoints. Skipped (returns false)
// when the vector has essentially no spread.
func remapExtreme(answers []int) bool {
	data := make(stats.Float64Data, len(answers))
	for i, v := range answers {
		data[i] = float64(v)
	}
	mean, _ := stats.Mean(data)
	sd, _ := stats.StandardDeviation(data)
	if sd < extremeMinStdDev {
		return false
	}
	for i, v := range answers {
		z := (float64(v) - mean) / sd
		answers[i] = clampAnswer(int(math.Round(extremeRemapMid + z*extremeRemapStep)))
	}
	return true
}

// inflateMidpoint spreads answers away from the respondent's mean.
// Answers sitting exactly on the mean get a smaller push in the
// direction of their side of the scale midpoint.
func inflateMidpoint(answers []int) {
	data := make(stats.Float64Data, len(answers))
	for i, v := range answers {
		data[i] = float64(v)
	}
	mean, _ := stats.Mean(data)
	for i, v := range answers {
		f := float64(v)
		switch {
		case f > mean:
			f += midpointPush
		case f < mean:
			f -= midpointPush
		case f >= extremeRemapMid:
			f += midpointNudge
		default:
			f -= midpointNudge
		}
		answers[i] = clampAnswer(int(math.Round(f)))
	}
}

func clampAnswer(v int) int {
	if v < model.ScaleMin {
		return model.ScaleMin
	}
	if v > model.ScaleMax {
		return model.ScaleMax
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
