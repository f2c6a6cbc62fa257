// Package repair coerces an arbitrary candidate critique object, whether
// produced by the fallback synthesizer, an external generator, or anything
// claiming to be one, into the canonical schema. Every rule is independently
// idempotent: repairing already-repaired output is a no-op, and the
// augmented insight cards never duplicate by title.
package repair

import (
	"github.com/jonathan/resume-critic/internal/ats"
	"github.com/jonathan/resume-critic/internal/fallback"
	"github.com/jonathan/resume-critic/internal/keywords"
	"github.com/jonathan/resume-critic/internal/structure"
	"github.com/jonathan/resume-critic/internal/textnorm"
	"github.com/jonathan/resume-critic/internal/types"
)

// Defaults applied when a candidate field is absent or invalid.
const (
	defaultOverallScore  = 75
	defaultCategoryScore = 72
	defaultCardTitle     = "Insight"
)

// neutralPhrase replaces job-specific phrasing when no job text was
// supplied, keeping the sentence grammatical instead of leaving a fragment.
const neutralPhrase = "target opportunities"

// ValidateAndRepair returns a critique guaranteed to satisfy every schema
// invariant, regardless of what candidate contains. A candidate that is not
// an object at all is replaced wholesale with a fresh fallback synthesis.
// The function is total: it never returns an error or nil.
func ValidateAndRepair(lib *keywords.Library, candidate any, resumeText, jobText string) *types.Critique {
	resumeText = textnorm.Normalize(resumeText)
	jobText = textnorm.Normalize(jobText)
	hasJob := jobText != ""

	obj := asObject(candidate)
	if obj == nil {
		out := fallback.Synthesize(lib, resumeText, hasJob, jobText)
		augment(lib, out, resumeText, jobText)
		return out
	}

	out := &types.Critique{}
	out.OverallScore = coerceScore(lookup(obj, "overall_score", "overallScore", "overall"), defaultOverallScore)

	out.Categories = repairCategories(lookup(obj, "categories"), hasJob, func() []types.Category {
		return fallback.Synthesize(lib, resumeText, hasJob, jobText).Categories
	})

	out.Insights = repairCards(lookup(obj, "insights", "extra_insights", "cards"), hasJob)

	// Keywords are always re-sanitized, whatever the candidate contained.
	provided := coerceStringList(lookup(obj, "critical_keywords", "criticalKeywords", "keywords", "missing_keywords"))
	out.CriticalKeywords = keywords.Sanitize(lib, provided, jobText, resumeText, keywords.FinalLimit)

	augment(lib, out, resumeText, jobText)
	return out
}

// augment recomputes the derived fields and merges the ATS and structure
// insight cards, replacing same-titled cards rather than appending.
func augment(lib *keywords.Library, out *types.Critique, resumeText, jobText string) {
	structSignals := structure.Extract(resumeText)
	signals, warnings, atsCard := ats.Compute(lib, resumeText, jobText, structSignals)

	out.ATSSignals = signals
	out.ATSWarnings = warnings
	out.Structure = structSignals

	out.UpsertInsight(atsCard)
	out.UpsertInsight(structure.Card(structSignals))
}

// repairCategories maps each candidate category through coercion, status
// recomputation and defaulting. Absent or empty lists substitute the
// fallback roster supplied by defaults.
func repairCategories(raw any, hasJob bool, defaults func() []types.Category) []types.Category {
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return defaults()
	}

	out := make([]types.Category, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		cat := types.Category{
			Name:     coerceString(lookup(m, "name")),
			Score:    coerceScore(lookup(m, "score"), defaultCategoryScore),
			Feedback: coerceString(lookup(m, "feedback")),
		}
		if cat.Name == "" {
			cat.Name = "General"
		}
		// Status is never trusted from input.
		cat.Status = types.StatusForScore(cat.Score)
		if cat.Feedback == "" {
			cat.Feedback = "The " + cat.Name + " area was reviewed; no specific issues were reported."
		}
		cat.Suggestions = coerceStringList(lookup(m, "suggestions"))
		if len(cat.Suggestions) == 0 {
			cat.Suggestions = []string{"Review the " + cat.Name + " area against roles you are targeting."}
		}
		if !hasJob {
			cat.Feedback = neutralizeJobPhrases(cat.Feedback)
			for i, s := range cat.Suggestions {
				cat.Suggestions[i] = neutralizeJobPhrases(s)
			}
		}
		out = append(out, cat)
	}

	if len(out) == 0 {
		return defaults()
	}
	return out
}

// repairCards normalizes the extra-insight card list. Non-arrays become an
// empty list; surviving cards get defaulted fields and a constrained status.
func repairCards(raw any, hasJob bool) []types.InsightCard {
	list, ok := raw.([]any)
	if !ok {
		return []types.InsightCard{}
	}

	out := make([]types.InsightCard, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		card := types.InsightCard{
			Title:   coerceString(lookup(m, "title")),
			Status:  coerceString(lookup(m, "status")),
			Details: coerceString(lookup(m, "details")),
			Tips:    coerceStringList(lookup(m, "tips")),
		}
		if card.Title == "" {
			card.Title = defaultCardTitle
		}
		card.Status = statusOrDefault(card.Status)
		if card.Details == "" {
			card.Details = "No additional details were provided."
		}
		if len(card.Tips) == 0 {
			card.Tips = []string{"Review this area manually."}
		}
		if !hasJob {
			card.Details = neutralizeJobPhrases(card.Details)
			for i, tip := range card.Tips {
				card.Tips[i] = neutralizeJobPhrases(tip)
			}
		}
		out = append(out, card)
	}
	return out
}
