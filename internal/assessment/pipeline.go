// Package assessment is the pure scoring core: quality gate, style
// corrector, dimension scorer, profile classifier and strength
// extractor, chained by Pipeline. No I/O, no clock, no randomness;
// the same input always yields the same result.
package assessment

import (
	"fmt"
	"strings"

	"btyesteem/internal/catalog"
	"btyesteem/internal/model"
)

// Pipeline runs a submission through the full assessment chain. Safe for
// concurrent use across submissions; it holds only immutable config.
type Pipeline struct {
	gate       *QualityGate
	corrector  *StyleCorrector
	scorer     *DimensionScorer
	classifier *ProfileClassifier
	extractor  *StrengthExtractor

	reverseIndices []int
}

// NewPipeline wires the assessment chain against a loaded catalog.
func NewPipeline(cat *catalog.Catalog) *Pipeline {
	reverse := make([]int, 0, model.ItemCount)
	for _, it := range cat.Items {
		if it.ReverseCoded {
			reverse = append(reverse, it.Index)
		}
	}
	return &Pipeline{
		gate:           NewQualityGate(),
		corrector:      NewStyleCorrector(),
		scorer:         NewDimensionScorer(cat),
		classifier:     NewProfileClassifier(),
		extractor:      NewStrengthExtractor(cat.Strengths),
		reverseIndices: reverse,
	}
}

// Run evaluates a submission. A quality rejection is a normal result
// variant (Rejected() true, Message set, no scores), not an error;
// errors are reserved for malformed input.
func (p *Pipeline) Run(answers []int, responseTimes []float64, reference [][]float64) (*model.AssessmentResult, error) {
	verdict, err := p.gate.Evaluate(answers, responseTimes, reference)
	if err != nil {
		return nil, err
	}
	if verdict.Recommendation == model.RecommendReject {
		return &model.AssessmentResult{
			Quality: verdict,
			Message: rejectMessage(verdict),
		}, nil
	}

	correction, err := p.corrector.Correct(answers, p.reverseIndices)
	if err != nil {
		return nil, err
	}

	scores, err := p.scorer.Score(correction.CorrectedAnswers)
	if err != nil {
		return nil, err
	}

	return &model.AssessmentResult{
		Quality:         verdict,
		StyleCorrection: &correction,
		Scores:          &scores,
		ProfileType:     p.classifier.Classify(scores),
		Strengths:       p.extractor.Extract(correction.CorrectedAnswers),
	}, nil
}

var flagReasons = map[model.QualityFlag]string{
	model.FlagSpeeding:       "answers came in too fast to reflect the items",
	model.FlagLongstring:     "a long run of identical answers",
	model.FlagParityMismatch: "inconsistent answers across matched item halves",
	model.FlagOutlier:        "an answer pattern far outside the typical range",
}

func rejectMessage(v model.QualityVerdict) string {
	reasons := make([]string, 0, len(v.Flags))
	for _, f := range v.Flags {
		if r, ok := flagReasons[f]; ok {
			reasons = append(reasons, r)
		}
	}
	if len(reasons) == 0 {
		return "The submission did not pass the response quality check."
	}
	return fmt.Sprintf("The submission did not pass the response quality check: %s.",
		strings.Join(reasons, "; "))
}
