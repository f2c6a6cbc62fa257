package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-critic/internal/ats"
	"github.com/jonathan/resume-critic/internal/keywords"
	"github.com/jonathan/resume-critic/internal/structure"
	"github.com/jonathan/resume-critic/internal/types"
)

const testResume = `SUMMARY
Operations leader.

EXPERIENCE
Director, Acme Corp    Jan 2019 - Mar 2024
• Led a team of 12
• Reduced costs by 30%

SKILLS
SQL, Tableau

EDUCATION
B.S., State University, 2010`

func TestValidateAndRepair_NilCandidateFallsBack(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, nil, testResume, "")

	require.NotNil(t, out)
	assert.Len(t, out.Categories, 6)
	assert.NotEmpty(t, out.CriticalKeywords)
	assert.NotNil(t, out.ATSSignals)
	assert.NotNil(t, out.Structure)
}

func TestValidateAndRepair_GarbageCandidateFallsBack(t *testing.T) {
	lib := keywords.NewLibrary()

	for _, candidate := range []any{42, "not json at all", []string{"a"}, true} {
		out := ValidateAndRepair(lib, candidate, testResume, "")
		require.NotNil(t, out, "candidate %v", candidate)
		assert.Len(t, out.Categories, 6)
	}
}

func TestValidateAndRepair_JSONStringCandidate(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, `{"overall_score": 81, "categories": [
		{"name": "Skills", "score": 90, "feedback": "Solid.", "suggestions": ["Keep going."]}
	]}`, testResume, "")

	assert.Equal(t, 81.0, out.OverallScore)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "Skills", out.Categories[0].Name)
}

func TestValidateAndRepair_ScoreCoercion(t *testing.T) {
	lib := keywords.NewLibrary()

	cases := map[string]struct {
		candidate map[string]any
		expected  float64
	}{
		"string number": {map[string]any{"overall_score": "88"}, 88},
		"alias key":     {map[string]any{"overallScore": 64.0}, 64},
		"clamped high":  {map[string]any{"overall_score": 250.0}, 100},
		"clamped low":   {map[string]any{"overall_score": -5.0}, 0},
		"missing":       {map[string]any{}, defaultOverallScore},
		"non-numeric":   {map[string]any{"overall_score": "eighty"}, defaultOverallScore},
	}

	for name, tc := range cases {
		out := ValidateAndRepair(lib, tc.candidate, testResume, "")
		assert.Equal(t, tc.expected, out.OverallScore, name)
	}
}

func TestValidateAndRepair_StatusNeverTrusted(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, map[string]any{
		"categories": []any{
			map[string]any{"name": "Skills", "status": "excellent", "score": 95.0,
				"feedback": "Great.", "suggestions": []any{"None."}},
			map[string]any{"name": "Education", "status": "good", "score": 40.0,
				"feedback": "Thin.", "suggestions": []any{"Expand."}},
		},
	}, testResume, "")

	require.Len(t, out.Categories, 2)
	assert.Equal(t, types.StatusGood, out.Categories[0].Status)
	assert.Equal(t, types.StatusCritical, out.Categories[1].Status)
}

func TestValidateAndRepair_CategoryDefaults(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, map[string]any{
		"categories": []any{map[string]any{}},
	}, testResume, "")

	require.Len(t, out.Categories, 1)
	cat := out.Categories[0]
	assert.Equal(t, "General", cat.Name)
	assert.Equal(t, float64(defaultCategoryScore), cat.Score)
	assert.NotEmpty(t, cat.Feedback)
	assert.NotEmpty(t, cat.Suggestions)
}

func TestValidateAndRepair_NeutralizesJobPhrasesWithoutJob(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, map[string]any{
		"categories": []any{
			map[string]any{"name": "Skills", "score": 80.0,
				"feedback": "Tailor your skills to the job description.",
				"suggestions": []any{"Mirror this role in your summary."}},
		},
	}, testResume, "")

	assert.NotContains(t, out.Categories[0].Feedback, "job description")
	assert.Contains(t, out.Categories[0].Feedback, neutralPhrase)
	assert.NotContains(t, out.Categories[0].Suggestions[0], "this role")
}

func TestValidateAndRepair_KeepsJobPhrasesWithJob(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, map[string]any{
		"categories": []any{
			map[string]any{"name": "Skills", "score": 80.0,
				"feedback":    "Tailor your skills to the job description.",
				"suggestions": []any{"Review this role's requirements."}},
		},
	}, testResume, "Globex is seeking a Director of Operations with SQL experience.")

	assert.Contains(t, out.Categories[0].Feedback, "job description")
}

func TestValidateAndRepair_KeywordsSanitized(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, map[string]any{
		"critical_keywords": []any{"budget management", "x", "sql", "risk mitigation",
			"vendor relations", "project management", "data analysis"},
	}, testResume, "")

	assert.Contains(t, out.CriticalKeywords, "Budget ownership")
	assert.Contains(t, out.CriticalKeywords, "SQL")
	assert.NotContains(t, out.CriticalKeywords, "x")
	assert.LessOrEqual(t, len(out.CriticalKeywords), keywords.FinalLimit)
}

func TestValidateAndRepair_CardsReplacedNotAppended(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, map[string]any{
		"insights": []any{
			map[string]any{"title": ats.CardTitle, "status": "good",
				"details": "stale details", "tips": []any{"stale tip"}},
			map[string]any{"title": "Custom Insight", "status": "warning",
				"details": "kept", "tips": []any{"tip"}},
		},
	}, testResume, "")

	atsCards := 0
	for _, card := range out.Insights {
		if card.Title == ats.CardTitle {
			atsCards++
			assert.NotEqual(t, "stale details", card.Details)
		}
	}
	assert.Equal(t, 1, atsCards)
	assert.Equal(t, 1, countByTitle(out, "Custom Insight"))
	assert.Equal(t, 1, countByTitle(out, structure.CardTitle))
}

func TestValidateAndRepair_CardDefaults(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, map[string]any{
		"insights": []any{map[string]any{"status": "spectacular"}},
	}, testResume, "")

	card := findCard(t, out, defaultCardTitle)
	assert.Equal(t, types.StatusWarning, card.Status)
	assert.NotEmpty(t, card.Details)
	assert.NotEmpty(t, card.Tips)
}

func TestValidateAndRepair_FixedPoint(t *testing.T) {
	lib := keywords.NewLibrary()

	once := ValidateAndRepair(lib, map[string]any{
		"overall_score": "88",
		"categories": []any{
			map[string]any{"name": "Skills", "score": 90.0, "feedback": "Solid.",
				"suggestions": []any{"Keep going."}},
		},
		"critical_keywords": []any{"budget management", "sql", "risk mitigation",
			"vendor relations", "project management", "data analysis"},
	}, testResume, "")

	twice := ValidateAndRepair(lib, once, testResume, "")

	assert.Equal(t, once, twice)
}

func TestValidateAndRepair_FixedPointOnFallback(t *testing.T) {
	lib := keywords.NewLibrary()

	once := ValidateAndRepair(lib, nil, testResume, "")
	twice := ValidateAndRepair(lib, once, testResume, "")

	assert.Equal(t, once, twice)
}

func TestValidateAndRepair_FixedPointOnEmptyInputs(t *testing.T) {
	lib := keywords.NewLibrary()

	once := ValidateAndRepair(lib, nil, "", "")
	twice := ValidateAndRepair(lib, once, "", "")

	assert.Equal(t, once, twice)
}

func TestValidateAndRepair_TotalOnEmptyInputs(t *testing.T) {
	lib := keywords.NewLibrary()

	out := ValidateAndRepair(lib, nil, "", "")

	require.NotNil(t, out)
	assert.GreaterOrEqual(t, out.OverallScore, 0.0)
	assert.NotEmpty(t, out.Categories)
	assert.NotEmpty(t, out.CriticalKeywords)
}

func countByTitle(c *types.Critique, title string) int {
	n := 0
	for _, card := range c.Insights {
		if card.Title == title {
			n++
		}
	}
	return n
}

func findCard(t *testing.T, c *types.Critique, title string) types.InsightCard {
	t.Helper()
	for _, card := range c.Insights {
		if card.Title == title {
			return card
		}
	}
	t.Fatalf("card %q not found", title)
	return types.InsightCard{}
}
