// Package fallback synthesizes a complete critique purely from the
// deterministic heuristics, with no external generator involved. Its output
// satisfies every schema invariant on its own and doubles as the
// validator's source of last-resort defaults.
package fallback

import (
	"math"

	"github.com/jonathan/resume-critic/internal/ats"
	"github.com/jonathan/resume-critic/internal/keywords"
	"github.com/jonathan/resume-critic/internal/structure"
	"github.com/jonathan/resume-critic/internal/textnorm"
	"github.com/jonathan/resume-critic/internal/types"
)

// overallFloor is the minimum overall score the synthesizer emits; even an
// empty resume gets a workable starting point rather than a zero.
const overallFloor = 55

// Synthesize produces a complete critique from heuristics alone. hasJob
// selects the job-aware scoring path and category roster; jobText may be
// empty when hasJob is false.
func Synthesize(lib *keywords.Library, resumeText string, hasJob bool, jobText string) *types.Critique {
	resumeText = textnorm.Normalize(resumeText)
	jobText = textnorm.Normalize(jobText)
	if jobText == "" {
		hasJob = false
	}

	structSignals := structure.Extract(resumeText)
	signals, warnings, atsCard := ats.Compute(lib, resumeText, jobText, structSignals)

	coverage := clamp(40+float64(signals.WordCount)/10, 50, 90)
	metricScore := clamp(55+float64(signals.MetricCount)*2, 55, 90)
	structScore := clamp(55+float64(signals.BulletCount)*1.5, 55, 88)

	components := []float64{coverage, metricScore, structScore}
	alignment := 0.0
	if hasJob {
		overlap := 0.0
		if signals.KeywordOverlap != nil {
			overlap = *signals.KeywordOverlap
		}
		alignment = clamp(55+overlap*20, 55, 93)
		components = append(components, alignment)
	}

	overall := math.Round(mean(components))
	if overall < overallFloor {
		overall = overallFloor
	}

	critique := &types.Critique{
		OverallScore: overall,
		Categories:   buildCategories(resumeText, hasJob, signals, structSignals, metricScore, structScore, alignment),
		CriticalKeywords: truncate(
			keywords.Extract(lib, jobText, resumeText, keywords.GenerationLimit),
			keywords.FinalLimit),
		ATSSignals:  signals,
		ATSWarnings: warnings,
		Structure:   structSignals,
	}

	critique.UpsertInsight(atsCard)
	critique.UpsertInsight(structure.Card(structSignals))

	return critique
}

func mean(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
