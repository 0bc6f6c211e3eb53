package assessment

import "btyesteem/internal/model"

// classifierRule maps a predicate over dimension scores to a profile.
type classifierRule struct {
	match   func(model.DimensionScores) bool
	profile model.ProfileType
}

// ProfileClassifier assigns one of the six esteem profiles to a score
// set. The rules are evaluated top to bottom and the first match wins;
// the ordering IS the tie-break policy, so it must not be reordered.
type ProfileClassifier struct {
	rules []classifierRule
}

// NewProfileClassifier creates the classifier with the fixed rule order.
func NewProfileClassifier() *ProfileClassifier {
	return &ProfileClassifier{
		rules: []classifierRule{
			{
				match: func(d model.DimensionScores) bool {
					return d.Composite >= 75 && d.Section(model.SectionStability) >= 70
				},
				profile: model.ProfileRooted,
			},
			{
				match: func(d model.DimensionScores) bool {
					return d.Section(model.SectionStability) < 50
				},
				profile: model.ProfileWavering,
			},
			{
				match: func(d model.DimensionScores) bool {
					return d.Section(model.SectionCompassion) < 45
				},
				profile: model.ProfileSelfCritical,
			},
			{
				match: func(d model.DimensionScores) bool {
					return d.Section(model.SectionGrowth) >= 70
				},
				profile: model.ProfileGrowing,
			},
			{
				match: func(d model.DimensionScores) bool {
					return d.Section(model.SectionSocial) < 50
				},
				profile: model.ProfileQuietObserver,
			},
		},
	}
}

// Classify returns the first matching profile, or balance_seeker when
// no rule fires.
func (c *ProfileClassifier) Classify(scores model.DimensionScores) model.ProfileType {
	for _, r := range c.rules {
		if r.match(scores) {
			return r.profile
		}
	}
	return model.ProfileBalanceSeeker
}
