package assessment

import (
	"btyesteem/internal/catalog"
	"btyesteem/internal/model"
)

// DimensionScorer turns a (corrected) answer vector into per-section
// scores and a weighted composite, all on a 0-100 scale. Reverse coding
// and section weights come from the catalog.
type DimensionScorer struct {
	cat *catalog.Catalog
}

// NewDimensionScorer creates a scorer bound to a catalog.
func NewDimensionScorer(cat *catalog.Catalog) *DimensionScorer {
	return &DimensionScorer{cat: cat}
}

// Score computes the five section scores and the composite. Each section
// is the sum of its 10 item contributions (reverse-coded where the
// catalog says so) normalized to 0-100.
func (s *DimensionScorer) Score(answers []int) (model.DimensionScores, error) {
	if err := validateAnswers(answers); err != nil {
		return model.DimensionScores{}, err
	}

	const sectionMax = model.SectionSize * model.ScaleMax

	perSection := make(map[model.Section]float64, len(model.Sections))
	for si, section := range model.Sections {
		sum := 0
		for i := si * model.SectionSize; i < (si+1)*model.SectionSize; i++ {
			v := answers[i]
			if s.cat.IsReverse(i) {
				v = model.ReverseCode(v)
			}
			sum += v
		}
		perSection[section] = float64(sum) / float64(sectionMax) * 100
	}

	composite := 0.0
	for section, score := range perSection {
		composite += score * s.cat.SectionWeights[section]
	}

	return model.DimensionScores{PerSection: perSection, Composite: composite}, nil
}
