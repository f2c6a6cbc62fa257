package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPosting = `Company: Globex
Globex is seeking an Operations Manager.

Responsibilities:
- Own the $2M budget and quarterly forecasting
- Risk management across vendor contracts
- Stakeholder management with cross-functional teams
- Build KPI dashboards in Tableau`

const resumeSample = `Operations Manager with ten years of experience.
• Managed a $1.5M budget across three departments
• Led risk assessment reviews for vendor onboarding
• Built Tableau dashboards for executive reporting`

func TestExtract_RuleMatchesLeadTheList(t *testing.T) {
	lib := NewLibrary()

	out := Extract(lib, jobPosting, resumeSample, GenerationLimit)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Budget ownership")
	assert.Contains(t, out, "Risk management")
	assert.Contains(t, out, "Stakeholder management")
	assert.LessOrEqual(t, len(out), GenerationLimit)
}

func TestExtract_RespectsLimit(t *testing.T) {
	lib := NewLibrary()

	out := Extract(lib, jobPosting, resumeSample, 5)

	assert.Len(t, out, 5)
}

func TestExtract_DedupesCaseInsensitively(t *testing.T) {
	lib := NewLibrary()

	out := Extract(lib, jobPosting, resumeSample, GenerationLimit)

	seen := make(map[string]bool)
	for _, kw := range out {
		key := strings.ToLower(kw)
		assert.False(t, seen[key], "duplicate keyword %q", kw)
		seen[key] = true
	}
}

func TestExtract_EmptyInputFallsBackToDefaults(t *testing.T) {
	lib := NewLibrary()

	out := Extract(lib, "", "", GenerationLimit)

	require.NotEmpty(t, out)
	for _, def := range lib.Defaults {
		assert.Contains(t, out, def)
	}
}

func TestExtract_CompanyNameExcludedFromMining(t *testing.T) {
	lib := NewLibrary()
	job := `Company: Initech
Initech is seeking a planner. Initech Initech Initech Initech values planning and scheduling and logistics coordination.`

	out := Extract(lib, job, "Planner with scheduling background.", GenerationLimit)

	for _, kw := range out {
		assert.NotContains(t, strings.ToLower(kw), "initech")
	}
}

func TestExtract_CompanyNameKeptWhenInResume(t *testing.T) {
	lib := NewLibrary()
	job := "Company: Initech\nInitech is seeking a planner. Initech Initech Initech Initech Initech planning."
	resume := "Senior Planner at Initech since 2019."

	out := Extract(lib, job, resume, GenerationLimit)

	found := false
	for _, kw := range out {
		if strings.Contains(strings.ToLower(kw), "initech") {
			found = true
		}
	}
	assert.True(t, found, "company name present in resume should stay mineable")
}

func TestSanitize_DropsJunkAndCanonicalizes(t *testing.T) {
	lib := NewLibrary()
	provided := []string{
		"  ",
		"x",
		strings.Repeat("toolong", 12),
		"budget management",
		"risk mitigation",
		"sql",
		"project management",
		"data analysis",
		"vendor relations",
		"customer success",
	}

	out := Sanitize(lib, provided, jobPosting, resumeSample, FinalLimit)

	assert.Contains(t, out, "Budget ownership")
	assert.Contains(t, out, "Risk management")
	assert.Contains(t, out, "SQL")
	assert.NotContains(t, out, "x")
	assert.LessOrEqual(t, len(out), FinalLimit)
}

func TestSanitize_TopsUpSparseInput(t *testing.T) {
	lib := NewLibrary()

	out := Sanitize(lib, []string{"sql"}, jobPosting, resumeSample, FinalLimit)

	assert.Greater(t, len(out), 1)
	assert.Contains(t, out, "SQL")
}

func TestSanitize_Idempotent(t *testing.T) {
	lib := NewLibrary()

	once := Sanitize(lib, []string{"budget management", "risk mitigation"}, jobPosting, resumeSample, FinalLimit)
	twice := Sanitize(lib, once, jobPosting, resumeSample, FinalLimit)

	assert.Equal(t, once, twice)
}

func TestSanitize_IdempotentAfterTopUp(t *testing.T) {
	lib := NewLibrary()

	once := Sanitize(lib, []string{"sql"}, jobPosting, resumeSample, FinalLimit)
	require.Greater(t, len(once), 1, "top-up should have fired")
	twice := Sanitize(lib, once, jobPosting, resumeSample, FinalLimit)

	assert.Equal(t, once, twice)
}

func TestSanitize_IdempotentOnExtractOutput(t *testing.T) {
	lib := NewLibrary()

	extracted := Extract(lib, "", resumeSample, GenerationLimit)
	once := Sanitize(lib, extracted, "", resumeSample, FinalLimit)
	twice := Sanitize(lib, once, "", resumeSample, FinalLimit)

	assert.Equal(t, once, twice)
}

func TestCanonicalize_SynonymWins(t *testing.T) {
	lib := NewLibrary()

	assert.Equal(t, "Budget ownership", Canonicalize(lib, "budget management"))
	assert.Equal(t, "Risk management", Canonicalize(lib, "risk mitigation"))
}

func TestCanonicalize_TitleCaseAndShortAllow(t *testing.T) {
	lib := NewLibrary()

	assert.Equal(t, "Supply Chain Planning", Canonicalize(lib, "supply chain planning"))
	assert.Equal(t, "SQL", Canonicalize(lib, "sql"))
	assert.Equal(t, "AWS Migration", Canonicalize(lib, "aws migration"))
}

func TestCanonicalize_StableOnLibraryCanonicals(t *testing.T) {
	lib := NewLibrary()

	for _, rule := range lib.Rules {
		assert.Equal(t, rule.Canonical, Canonicalize(lib, rule.Canonical))
	}
	for _, syn := range lib.Synonyms {
		assert.Equal(t, syn.Canonical, Canonicalize(lib, syn.Canonical))
	}
	for _, def := range lib.Defaults {
		assert.Equal(t, def, Canonicalize(lib, def))
	}
}

func TestExtract_DropsBareNumbers(t *testing.T) {
	lib := NewLibrary()
	resume := `EDUCATION
B.S., State University, 2010
M.S., State University, 2014
2010 2014 2010 2014 logistics planning`

	out := Extract(lib, "", resume, GenerationLimit)

	for _, kw := range out {
		for _, word := range strings.Fields(kw) {
			assert.False(t, isNumeric(word), "numeric token in keyword %q", kw)
		}
	}
}

func TestCanonicalize_PreservesMixedCase(t *testing.T) {
	lib := NewLibrary()

	assert.Equal(t, "PowerPoint Decks", Canonicalize(lib, "PowerPoint decks"))
}

func TestDetectCompanyName_LabelAndProse(t *testing.T) {
	assert.Equal(t, "Globex", detectCompanyName("Company: Globex\nsome text"))
	assert.Equal(t, "Initech", detectCompanyName("Initech is seeking a planner."))
	assert.Equal(t, "", detectCompanyName("We are seeking a planner."))
}
