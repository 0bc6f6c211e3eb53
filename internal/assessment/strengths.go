package assessment

import (
	"sort"

	"btyesteem/internal/model"
)

// maxStrengths is the fixed size of the user-facing strength list.
const maxStrengths = 3

// StrengthExtractor scores the static strength catalog against an
// answer vector and picks the top entries for the report.
type StrengthExtractor struct {
	candidates []model.StrengthCandidate
}

// NewStrengthExtractor creates an extractor over the given catalog
// entries. Candidate order matters: it breaks ties between equal scores.
func NewStrengthExtractor(candidates []model.StrengthCandidate) *StrengthExtractor {
	return &StrengthExtractor{candidates: candidates}
}

// Extract averages each candidate's evidence items, filters by threshold
// and returns at most three results in descending score order. When
// fewer than three candidates clear their threshold the filter is
// dropped and the raw top three are returned instead, so the report
// always has three strengths to show.
func (e *StrengthExtractor) Extract(answers []int) []model.StrengthResult {
	scored := make([]model.StrengthResult, 0, len(e.candidates))
	for _, c := range e.candidates {
		avg, ok := evidenceAverage(answers, c.EvidenceIndices)
		if !ok {
			continue
		}
		scored = append(scored, model.StrengthResult{
			Key:             c.Key,
			DisplayName:     c.DisplayName,
			Detail:          c.Detail,
			EvidenceIndices: c.EvidenceIndices,
			ObservedScore:   avg,
			MetThreshold:    avg >= c.Threshold,
		})
	}

	// Stable sort keeps catalog order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].ObservedScore > scored[j].ObservedScore
	})

	met := make([]model.StrengthResult, 0, len(scored))
	for _, s := range scored {
		if s.MetThreshold {
			met = append(met, s)
		}
	}
	picked := met
	if len(met) < maxStrengths {
		picked = scored
	}
	if len(picked) > maxStrengths {
		picked = picked[:maxStrengths]
	}
	return picked
}

// evidenceAverage averages the answers at the given indices, skipping
// any index beyond the vector bounds. ok is false when no index was
// usable.
func evidenceAverage(answers []int, indices []int) (float64, bool) {
	sum, n := 0, 0
	for _, idx := range indices {
		if idx < 0 || idx >= len(answers) {
			continue
		}
		sum += answers[idx]
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
