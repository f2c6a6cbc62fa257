package fallback

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-critic/internal/patterns"
	"github.com/jonathan/resume-critic/internal/types"
)

// Category names. The last slot depends on whether a job posting was
// supplied, matching the roster the external generator is prompted for.
const (
	CategoryContact   = "Contact Information"
	CategorySummary   = "Professional Summary"
	CategoryWork      = "Work Experience"
	CategorySkills    = "Skills"
	CategoryEducation = "Education"
	CategoryJobMatch  = "Job Match & Keywords"
	CategoryKeywords  = "Keyword Optimization"
)

// buildCategories emits the fixed category roster with deterministic
// scores, feedback and suggestions derived from the computed signals.
func buildCategories(resumeText string, hasJob bool, signals *types.AtsSignals, structSignals *types.StructureSignals, metricScore, structScore, alignment float64) []types.Category {
	categories := []types.Category{
		contactCategory(resumeText),
		summaryCategory(structSignals, signals),
		workCategory(signals, structSignals, structScore),
		skillsCategory(structSignals, signals),
		educationCategory(structSignals),
	}
	if hasJob {
		categories = append(categories, jobMatchCategory(signals, alignment))
	} else {
		categories = append(categories, keywordCategory(signals, metricScore))
	}
	return categories
}

func newCategory(name string, score float64, feedback string, suggestions ...string) types.Category {
	score = math.Round(clamp(score, 0, 100))
	return types.Category{
		Name:        name,
		Status:      types.StatusForScore(score),
		Score:       score,
		Feedback:    feedback,
		Suggestions: suggestions,
	}
}

func contactCategory(resumeText string) types.Category {
	p := patterns.Default()
	hasEmail := p.Email.MatchString(resumeText)
	hasPhone := p.Phone.MatchString(resumeText)

	switch {
	case hasEmail && hasPhone:
		return newCategory(CategoryContact, 88,
			"Email address and phone number are both present and parseable.",
			"Add a LinkedIn profile or portfolio link if you have one.")
	case hasEmail || hasPhone:
		missing := "phone number"
		if !hasEmail {
			missing = "email address"
		}
		return newCategory(CategoryContact, 72,
			fmt.Sprintf("Contact details are incomplete: no %s detected.", missing),
			fmt.Sprintf("Add a %s near the top of the resume.", missing),
			"Keep contact details in plain text, not inside a header graphic.")
	default:
		return newCategory(CategoryContact, 58,
			"No email address or phone number was detected.",
			"Add an email address and phone number at the top of the resume.",
			"Avoid placing contact details in images or page headers that parsers skip.")
	}
}

func summaryCategory(structSignals *types.StructureSignals, signals *types.AtsSignals) types.Category {
	if !structSignals.HasSection(types.SectionSummary) {
		return newCategory(CategorySummary, 60,
			"No summary or profile section was detected.",
			"Open with a 2-3 sentence summary naming your role, years of experience and one headline achievement.")
	}
	if signals.WordCount >= 280 {
		return newCategory(CategorySummary, 84,
			"A summary section is present and the resume has enough substance behind it.",
			"Tighten the summary to your two or three strongest, most specific claims.")
	}
	return newCategory(CategorySummary, 76,
		"A summary section is present but the resume is light on supporting content.",
		"Back the summary up with quantified achievements in the experience section.")
}

func workCategory(signals *types.AtsSignals, structSignals *types.StructureSignals, structScore float64) types.Category {
	suggestions := []string{}
	if signals.MetricCount < 3 {
		suggestions = append(suggestions,
			"Quantify outcomes: budgets, percentages, team sizes, time saved.")
	}
	if structSignals.ActionBulletLines*2 < structSignals.BulletLines {
		suggestions = append(suggestions,
			"Start each bullet with a strong action verb (Led, Built, Reduced).")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Order bullets within each role by impact, most impressive first.")
	}

	feedback := fmt.Sprintf(
		"Found %d bullet points, %d of them action-led, with %d quantified results.",
		structSignals.BulletLines, structSignals.ActionBulletLines, signals.MetricCount)
	return newCategory(CategoryWork, structScore, feedback, suggestions...)
}

func skillsCategory(structSignals *types.StructureSignals, signals *types.AtsSignals) types.Category {
	if !structSignals.HasSection(types.SectionSkills) {
		return newCategory(CategorySkills, 58,
			"No dedicated skills section was detected.",
			"Add a Skills section listing tools and competencies in plain text.")
	}
	score := clamp(70+float64(signals.HardSkillHits)*3+float64(signals.SoftSkillHits), 70, 90)
	return newCategory(CategorySkills, score,
		fmt.Sprintf("Skills section present with %d recognizable tools and %d soft skills named.",
			signals.HardSkillHits, signals.SoftSkillHits),
		"Mirror the exact skill names used in postings you target.")
}

func educationCategory(structSignals *types.StructureSignals) types.Category {
	if !structSignals.HasSection(types.SectionEducation) {
		return newCategory(CategoryEducation, 62,
			"No education section was detected.",
			"Add an Education section with degree, institution and year.")
	}
	return newCategory(CategoryEducation, 80,
		"An education section is present.",
		"List degree and institution on one line; omit graduation year if more than 15 years back.")
}

func jobMatchCategory(signals *types.AtsSignals, alignment float64) types.Category {
	overlap := 0.0
	if signals.KeywordOverlap != nil {
		overlap = *signals.KeywordOverlap
	}
	return newCategory(CategoryJobMatch, alignment,
		fmt.Sprintf("%.0f%% of the posting's terminology appears in the resume.", overlap*100),
		"Work the posting's exact terminology into your bullets where it is true of you.",
		"Address the posting's top requirements in your first page.")
}

func keywordCategory(signals *types.AtsSignals, metricScore float64) types.Category {
	return newCategory(CategoryKeywords, clamp(metricScore, 60, 85),
		fmt.Sprintf("Keyword density is driven by %d quantified achievements and %d recognizable skills.",
			signals.MetricCount, signals.HardSkillHits),
		"Compare the resume against target postings and close the keyword gaps.",
		"Spell out acronyms once so both forms are searchable.")
}
