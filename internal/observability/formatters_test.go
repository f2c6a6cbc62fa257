package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-critic/internal/types"
)

func sampleCritique() *types.Critique {
	return &types.Critique{
		OverallScore: 82,
		Categories: []types.Category{
			{Name: "Skills", Status: types.StatusGood, Score: 88, Feedback: "Solid.", Suggestions: []string{"Keep going."}},
			{Name: "Education", Status: types.StatusCritical, Score: 55, Feedback: "Thin.", Suggestions: []string{"Expand."}},
		},
		CriticalKeywords: []string{"SQL", "Forecasting", "Vendor management"},
		Insights: []types.InsightCard{
			{Title: "ATS Readiness", Status: types.StatusWarning, Details: "Thin on metrics.", Tips: []string{"Add numbers."}},
		},
		ATSWarnings: []string{"Resume is short (12 words)."},
	}
}

func TestPrintScoreSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreSummary(sampleCritique())

	out := buf.String()
	assert.Contains(t, out, "CRITIQUE SUMMARY")
	assert.Contains(t, out, "Overall Score: 82/100")
	assert.Contains(t, out, "Skills")
	assert.Contains(t, out, "Education")
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintKeywords(sampleCritique())

	out := buf.String()
	assert.Contains(t, out, "CRITICAL KEYWORDS")
	assert.Contains(t, out, "SQL")
}

func TestPrintWarnings_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarnings(&types.Critique{})

	assert.Contains(t, buf.String(), "NO ATS WARNINGS FOUND")
}

func TestPrintCritique_NilSafe(t *testing.T) {
	var buf bytes.Buffer
	assert.NotPanics(t, func() {
		NewPrinter(&buf).PrintCritique(nil)
	})
}

func TestPrintInsights_TruncatesLongDetails(t *testing.T) {
	critique := sampleCritique()
	critique.Insights[0].Details = "This is an extremely long details string that will not fit in the box width at all, not even close."

	var buf bytes.Buffer
	NewPrinter(&buf).PrintInsights(critique)

	assert.Contains(t, buf.String(), "...")
}
