package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-critic/internal/types"
)

// buildWarnings evaluates the fixed warning thresholds. Thresholds are
// independent; any number of warnings may fire for one resume.
func buildWarnings(signals *types.AtsSignals, structSignals *types.StructureSignals) []string {
	var warnings []string

	if signals.WordCount < minWordCount {
		warnings = append(warnings, fmt.Sprintf(
			"Resume is short (%d words). ATS scoring favors 280+ words of relevant content.",
			signals.WordCount))
	}
	if signals.MetricCount < minMetricCount {
		warnings = append(warnings,
			"Few measurable achievements found. Add numbers: budgets, percentages, team sizes, timelines.")
	}
	if signals.KeywordOverlap != nil && *signals.KeywordOverlap < overlapWarnBelow {
		warnings = append(warnings, fmt.Sprintf(
			"Only %.0f%% of the job posting's terms appear in the resume. Mirror the posting's terminology where it is true of you.",
			*signals.KeywordOverlap*100))
	}
	if signals.BulletCount < minBulletCount {
		warnings = append(warnings,
			"Few bullet points detected. ATS parsers and recruiters both scan bullets first.")
	}
	if unresolved := signals.AcronymsUsed - signals.AcronymsSpelt; unresolved > 0 {
		warnings = append(warnings,
			"Some acronyms are never spelled out. Write the long form once (e.g. Key Performance Indicators (KPI)).")
	}
	if len(structSignals.MissingCoreSections) > 0 {
		names := make([]string, 0, len(structSignals.MissingCoreSections))
		for _, sec := range structSignals.MissingCoreSections {
			names = append(names, sec.Title())
		}
		warnings = append(warnings, fmt.Sprintf(
			"No clear heading found for: %s. ATS section mapping depends on standard headings.",
			strings.Join(names, ", ")))
	}
	if structSignals.TimelineEntries < 2 && structSignals.StandaloneYears < 2 {
		warnings = append(warnings,
			"Few explicit date ranges found. Add Month Year – Month Year ranges to each role.")
	}
	if structSignals.DenseParagraphs >= 3 && signals.BulletCount < minBulletCount {
		warnings = append(warnings,
			"Long paragraphs with few bullets are hard for ATS parsers. Break them into bullet points.")
	}

	return warnings
}

// buildCard derives the summary insight card from the computed signals.
func buildCard(signals *types.AtsSignals, hasJob bool, warnings []string) types.InsightCard {
	card := types.InsightCard{Title: CardTitle}

	if hasJob && signals.KeywordOverlap != nil {
		overlap := *signals.KeywordOverlap
		switch {
		case overlap >= overlapGoodAt:
			card.Status = types.StatusGood
			card.Details = fmt.Sprintf(
				"Strong match: %.0f%% of the posting's terminology appears in the resume.", overlap*100)
		case overlap < overlapCriticalAt:
			card.Status = types.StatusCritical
			card.Details = fmt.Sprintf(
				"Weak match: only %.0f%% of the posting's terminology appears in the resume.", overlap*100)
		default:
			card.Status = types.StatusWarning
			card.Details = fmt.Sprintf(
				"Partial match: %.0f%% of the posting's terminology appears in the resume.", overlap*100)
		}
	} else {
		switch {
		case signals.MetricCount >= minMetricCount && signals.BulletCount >= 4:
			card.Status = types.StatusGood
			card.Details = fmt.Sprintf(
				"Resume is ATS-friendly: %d quantified achievements across %d bullet points.",
				signals.MetricCount, signals.BulletCount)
		case signals.MetricCount < 2 && signals.BulletCount < 2:
			card.Status = types.StatusCritical
			card.Details = "Resume lacks both quantified achievements and bullet structure, which most ATS scoring penalizes."
		default:
			card.Status = types.StatusWarning
			card.Details = fmt.Sprintf(
				"Resume is parseable but thin on signal: %d quantified achievements, %d bullet points.",
				signals.MetricCount, signals.BulletCount)
		}
	}

	if len(warnings) > 0 {
		tips := make([]string, 0, 3)
		for i, w := range warnings {
			if i == 3 {
				break
			}
			tips = append(tips, w)
		}
		card.Tips = tips
	} else {
		card.Tips = []string{"Keep keyword usage aligned with each posting you target."}
	}

	return card
}
