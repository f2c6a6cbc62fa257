// Package types provides type definitions for structured data used throughout the resume-critic system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category status values. Status is always a function of score, never
// trusted from input.
const (
	StatusGood     = "good"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// Score band cut points for status derivation.
const (
	goodThreshold    = 85
	warningThreshold = 70
)

// StatusForScore derives the category status from a 0-100 score.
func StatusForScore(score float64) string {
	switch {
	case score >= goodThreshold:
		return StatusGood
	case score >= warningThreshold:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// ValidStatus reports whether s is one of the three recognized status values.
func ValidStatus(s string) bool {
	return s == StatusGood || s == StatusWarning || s == StatusCritical
}

// Category represents one scored section of the critique.
type Category struct {
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// InsightCard is a supplemental callout attached to a critique.
type InsightCard struct {
	Title   string   `json:"title"`
	Status  string   `json:"status"`
	Details string   `json:"details"`
	Tips    []string `json:"tips"`
}

// Critique is the canonical analysis output. Every producer (fallback
// synthesizer or external generator) converges to this shape via the
// validator.
type Critique struct {
	OverallScore     float64           `json:"overall_score"`
	Categories       []Category        `json:"categories"`
	Insights         []InsightCard     `json:"insights"`
	CriticalKeywords []string          `json:"critical_keywords"`
	ATSSignals       *AtsSignals       `json:"ats_signals,omitempty"`
	ATSWarnings      []string          `json:"ats_warnings"`
	Structure        *StructureSignals `json:"structure_signals,omitempty"`
}

// UpsertInsight replaces the card with the same title, or appends when no
// card carries that title. Titles are matched exactly. Repeated upserts with
// the same card never accumulate duplicates.
func (c *Critique) UpsertInsight(card InsightCard) {
	for i := range c.Insights {
		if c.Insights[i].Title == card.Title {
			c.Insights[i] = card
			return
		}
	}
	c.Insights = append(c.Insights, card)
}
