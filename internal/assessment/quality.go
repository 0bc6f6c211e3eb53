package assessment

import (
	"math"

	"github.com/montanaflynn/stats"

	"btyesteem/internal/model"
)

// Detection thresholds for the careless-responding checks.
const (
	speedingMeanSeconds  = 2.0 // mean response time below this flags speeding
	speedingFastSeconds  = 1.0 // single item faster than this counts as "fast"
	speedingFastRun      = 3   // consecutive fast items that flag speeding
	longstringRun        = 10  // consecutive identical answers that flag longstring
	parityMinCorrelation = 0.3
	outlierP             = 0.001 // chi-squared tail for the Mahalanobis cutoff
	minReferenceVectors  = 500   // below this the outlier check is skipped
)

// Flag weights. The quality score is 1 minus the sum of the weights of
// the flags raised, clamped to [0,1]. Speeding and longstring alone pull
// the score to 0.5; either softer flag alone leaves it at 0.65.
var flagWeights = map[model.QualityFlag]float64{
	model.FlagSpeeding:       0.5,
	model.FlagLongstring:     0.5,
	model.FlagParityMismatch: 0.35,
	model.FlagOutlier:        0.35,
}

// Recommendation bands on the quality score.
const (
	rejectScoreFloor = 0.4
	reviewScoreFloor = 0.7
	rejectFlagCount  = 2
)

// QualityGate screens a submission for careless-responding patterns
// before any scoring happens. Pure and deterministic.
type QualityGate struct{}

// NewQualityGate creates a quality gate.
func NewQualityGate() *QualityGate {
	return &QualityGate{}
}

// Evaluate inspects a raw answer vector, optional per-item response times
// and an optional reference corpus of previously accepted vectors, and
// returns a verdict. Timing data may be empty (the speeding check is then
// skipped); a reference corpus smaller than minReferenceVectors skips the
// outlier check rather than flagging or erroring.
func (g *QualityGate) Evaluate(answers []int, responseTimes []float64, reference [][]float64) (model.QualityVerdict, error) {
	if err := validateAnswers(answers); err != nil {
		return model.QualityVerdict{}, err
	}
	if err := validateResponseTimes(responseTimes); err != nil {
		return model.QualityVerdict{}, err
	}

	var verdict model.QualityVerdict
	flags := make([]model.QualityFlag, 0, 4)

	if len(responseTimes) > 0 {
		if g.checkSpeeding(responseTimes, &verdict.Details) {
			flags = append(flags, model.FlagSpeeding)
		}
	}
	if g.checkLongstring(answers, &verdict.Details) {
		flags = append(flags, model.FlagLongstring)
	}
	if g.checkParity(answers, &verdict.Details) {
		flags = append(flags, model.FlagParityMismatch)
	}
	if len(reference) >= minReferenceVectors {
		if g.checkOutlier(answers, reference, &verdict.Details) {
			flags = append(flags, model.FlagOutlier)
		}
	}

	score := 1.0
	for _, f := range flags {
		score -= flagWeights[f]
	}
	verdict.Score = math.Max(0, math.Min(1, score))
	verdict.Flags = flags

	switch {
	case verdict.Score < rejectScoreFloor || len(flags) >= rejectFlagCount:
		verdict.Recommendation = model.RecommendReject
	case verdict.Score < reviewScoreFloor:
		verdict.Recommendation = model.RecommendReview
	default:
		verdict.Recommendation = model.RecommendAccept
	}
	return verdict, nil
}

func (g *QualityGate) checkSpeeding(times []float64, details *model.QualityDetails) bool {
	mean, _ := stats.Mean(stats.Float64Data(times))
	details.AvgResponseTime = mean

	fast, run, maxRun := 0, 0, 0
	for _, t := range times {
		if t < speedingFastSeconds {
			fast++
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}
	details.FastRatio = float64(fast) / float64(len(times))
	details.MaxConsecutiveFast = maxRun

	return mean < speedingMeanSeconds || maxRun >= speedingFastRun
}

func (g *QualityGate) checkLongstring(answers []int, details *model.QualityDetails) bool {
	run, maxRun := 1, 1
	for i := 1; i < len(answers); i++ {
		if answers[i] == answers[i-1] {
			run++
		} else {
			run = 1
		}
		if run > maxRun {
			maxRun = run
		}
	}
	details.MaxStreak = maxRun
	return maxRun >= longstringRun
}

// checkParity splits the vector into even- and odd-indexed halves and
// flags when the two disagree. A correlation that is undefined because
// one half has zero variance is insufficient evidence, not a mismatch.
func (g *QualityGate) checkParity(answers []int, details *model.QualityDetails) bool {
	even := make([]float64, 0, len(answers)/2+1)
	odd := make([]float64, 0, len(answers)/2)
	for i, a := range answers {
		if i%2 == 0 {
			even = append(even, float64(a))
		} else {
			odd = append(odd, float64(a))
		}
	}
	n := len(even)
	if len(odd) < n {
		even = even[:len(odd)]
		n = len(odd)
	}

	varEven, _ := stats.Variance(stats.Float64Data(even))
	varOdd, _ := stats.Variance(stats.Float64Data(odd))
	if varEven == 0 || varOdd == 0 {
		details.ParityDefined = false
		return false
	}

	r, err := stats.Pearson(stats.Float64Data(even), stats.Float64Data(odd[:n]))
	if err != nil || math.IsNaN(r) {
		details.ParityDefined = false
		return false
	}
	details.ParityDefined = true
	details.ParityCorrelation = r
	return r < parityMinCorrelation
}

func (g *QualityGate) checkOutlier(answers []int, reference [][]float64, details *model.QualityDetails) bool {
	vec := make([]float64, len(answers))
	for i, a := range answers {
		vec[i] = float64(a)
	}
	d2, threshold, ok := mahalanobisSquared(vec, reference)
	if !ok {
		return false
	}
	details.OutlierChecked = true
	details.MahalanobisSquared = d2
	details.OutlierThreshold = threshold
	return d2 > threshold
}
