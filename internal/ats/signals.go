// Package ats computes quantitative applicant-tracking-system risk metrics
// for a resume: keyword overlap against the posting, metric and bullet
// density, skill hits and acronym completeness, together with
// human-readable warnings and a summary insight card.
package ats

import (
	"strings"

	"github.com/jonathan/resume-critic/internal/keywords"
	"github.com/jonathan/resume-critic/internal/patterns"
	"github.com/jonathan/resume-critic/internal/structure"
	"github.com/jonathan/resume-critic/internal/textnorm"
	"github.com/jonathan/resume-critic/internal/types"
)

// CardTitle is the insight-card title for ATS findings. The validator
// replaces an existing card with this title instead of appending.
const CardTitle = "ATS Readiness"

// Canonical thresholds. Historical variants disagreed on the overlap cut
// points (0.30/0.35/0.45); 0.25 and 0.45 are the canonical pair, with 0.30
// as the warning floor.
const (
	minWordCount      = 280
	minMetricCount    = 3
	minBulletCount    = 5
	overlapWarnBelow  = 0.30
	overlapGoodAt     = 0.45
	overlapCriticalAt = 0.25
	minOverlapTokens  = 4 // minimum token length for overlap comparison
)

// hardSkills and softSkills are matched as substrings of the lowercased
// resume.
var hardSkills = []string{
	"sql", "python", "excel", "tableau", "power bi", "salesforce", "jira",
	"sap", "aws", "azure", "gcp", "java", "javascript", "sas",
	"quickbooks", "autocad", "figma", "google analytics", "looker",
	"snowflake", "workday", "netsuite", "hubspot",
}

var softSkills = []string{
	"leadership", "communication", "collaboration", "problem solving",
	"problem-solving", "adaptability", "mentoring", "negotiation",
	"time management", "critical thinking", "teamwork", "presentation",
	"decision making", "conflict resolution",
}

// Compute derives AtsSignals, an ordered warning list and the summary
// insight card. jobText may be empty; the overlap ratio is nil in that
// case. structSignals may be nil and is then derived from the resume.
func Compute(lib *keywords.Library, resumeText, jobText string, structSignals *types.StructureSignals) (*types.AtsSignals, []string, types.InsightCard) {
	resumeText = textnorm.Normalize(resumeText)
	jobText = textnorm.Normalize(jobText)
	if structSignals == nil {
		structSignals = structure.Extract(resumeText)
	}

	p := patterns.Default()
	resumeLower := strings.ToLower(resumeText)

	signals := &types.AtsSignals{
		WordCount:   len(strings.Fields(resumeText)),
		MetricCount: len(p.Metric.FindAllString(resumeText, -1)),
		BulletCount: structSignals.BulletLines,
		Structure:   structSignals,
	}

	if jobText != "" {
		overlap := overlapRatio(lib, jobText, resumeLower)
		signals.KeywordOverlap = &overlap
	}

	for _, skill := range hardSkills {
		if strings.Contains(resumeLower, skill) {
			signals.HardSkillHits++
		}
	}
	for _, skill := range softSkills {
		if strings.Contains(resumeLower, skill) {
			signals.SoftSkillHits++
		}
	}

	signals.AcronymsUsed, signals.AcronymsSpelt = acronymCompleteness(resumeText)

	warnings := buildWarnings(signals, structSignals)
	card := buildCard(signals, jobText != "", warnings)
	return signals, warnings, card
}

// overlapRatio is |job tokens ∩ resume tokens| / |unique job tokens|, over
// tokens of at least four characters with stop words removed.
func overlapRatio(lib *keywords.Library, jobText, resumeLower string) float64 {
	p := patterns.Default()

	jobTokens := make(map[string]bool)
	for _, tok := range p.Token.FindAllString(strings.ToLower(jobText), -1) {
		if len(tok) >= minOverlapTokens && !lib.IsStopWord(tok) {
			jobTokens[tok] = true
		}
	}
	if len(jobTokens) == 0 {
		return 0
	}

	resumeTokens := make(map[string]bool)
	for _, tok := range p.Token.FindAllString(resumeLower, -1) {
		resumeTokens[tok] = true
	}

	hits := 0
	for tok := range jobTokens {
		if resumeTokens[tok] {
			hits++
		}
	}
	return float64(hits) / float64(len(jobTokens))
}

// acronymCompleteness counts jargon acronyms used in the resume and how
// many of those are also spelled out in long form at least once.
func acronymCompleteness(resumeText string) (used, spelt int) {
	for _, pair := range patterns.Default().AcronymPairs {
		if !containsAcronym(resumeText, pair.Acronym) {
			continue
		}
		used++
		if pair.LongForm.MatchString(resumeText) {
			spelt++
		}
	}
	return used, spelt
}

// containsAcronym matches the upper-cased acronym with word boundaries so
// "SLA" never matches inside "ISLAND".
func containsAcronym(text, acronym string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], acronym)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(acronym)
		leftOK := idx == 0 || !isWordByte(text[idx-1])
		rightOK := end == len(text) || !isWordByte(text[end])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
		if start >= len(text) {
			return false
		}
	}
}

func isWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
