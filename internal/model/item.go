package model

// Answer scale bounds. The whole questionnaire uses a 1-4 agreement scale.
const (
	ScaleMin = 1
	ScaleMax = 4
)

// ItemCount is the fixed questionnaire length.
const ItemCount = 50

// SectionSize is the number of items in each sub-scale section.
const SectionSize = 10

// Section identifies one of the five fixed 10-item sub-scales.
type Section string

const (
	SectionCore       Section = "core"       // items 0-9
	SectionCompassion Section = "compassion" // items 10-19
	SectionStability  Section = "stability"  // items 20-29
	SectionGrowth     Section = "growth"     // items 30-39
	SectionSocial     Section = "social"     // items 40-49
)

// Sections lists the five sections in questionnaire order.
var Sections = []Section{
	SectionCore,
	SectionCompassion,
	SectionStability,
	SectionGrowth,
	SectionSocial,
}

// Item is a single questionnaire item. Items are static configuration
// loaded once at startup; the rendering layer uses Text to cite evidence.
type Item struct {
	Index        int     `json:"index" bson:"index"`
	Section      Section `json:"section" bson:"section"`
	Text         string  `json:"text" bson:"text"`
	ReverseCoded bool    `json:"reverseCoded" bson:"reverseCoded"`
}

// ReverseCode inverts a raw answer on the 1-4 scale (1<->4, 2<->3).
func ReverseCode(answer int) int {
	return (ScaleMax + ScaleMin) - answer
}
