package structure

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-critic/internal/types"
)

// CardTitle is the insight-card title used for structural findings. The
// validator replaces any existing card with this title instead of appending.
const CardTitle = "Structure & Timeline"

// Card summarizes structural findings as an insight card.
func Card(signals *types.StructureSignals) types.InsightCard {
	card := types.InsightCard{Title: CardTitle}

	var problems []string
	var tips []string

	if len(signals.MissingCoreSections) > 0 {
		names := make([]string, 0, len(signals.MissingCoreSections))
		for _, sec := range signals.MissingCoreSections {
			names = append(names, sec.Title())
		}
		problems = append(problems, fmt.Sprintf("missing %s heading(s)", strings.Join(names, ", ")))
		tips = append(tips, fmt.Sprintf("Add clearly labeled headings for %s.", strings.Join(names, ", ")))
	}

	if signals.TimelineEntries < 2 && signals.StandaloneYears < 2 {
		problems = append(problems, "few or no explicit date ranges")
		tips = append(tips, "Add explicit date ranges (e.g. Jan 2021 – Present) to each role.")
	}

	if signals.BulletLines < 4 {
		problems = append(problems, "low bullet density")
		tips = append(tips, "Convert achievements into concise bullet points.")
	} else if signals.ActionBulletLines*2 < signals.BulletLines {
		problems = append(problems, "many bullets do not open with an action verb")
		tips = append(tips, "Start each bullet with a strong action verb (Led, Built, Reduced).")
	}

	if signals.DenseParagraphs >= 3 {
		problems = append(problems, fmt.Sprintf("%d dense paragraphs", signals.DenseParagraphs))
		tips = append(tips, "Break long paragraphs into scannable bullet points.")
	}

	switch {
	case len(problems) == 0:
		card.Status = types.StatusGood
		card.Details = "Section headings, bullet structure and date ranges all look scannable."
		card.Tips = []string{"Keep headings and date formats consistent across roles."}
	case len(signals.MissingCoreSections) >= 2 || len(problems) >= 3:
		card.Status = types.StatusCritical
		card.Details = "Structural issues found: " + strings.Join(problems, "; ") + "."
		card.Tips = tips
	default:
		card.Status = types.StatusWarning
		card.Details = "Structural issues found: " + strings.Join(problems, "; ") + "."
		card.Tips = tips
	}

	return card
}
