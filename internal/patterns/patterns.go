// Package patterns holds the process-wide, read-only regular expression
// table used by the heuristics engine. Every pattern is compiled exactly
// once at package init and tagged by purpose, so call sites never compile
// regexes and the "what counts as a heading" policy lives in one place.
// None of the patterns use unbounded backtracking constructs.
package patterns

import (
	"regexp"

	"github.com/jonathan/resume-critic/internal/types"
)

// Bullet is the canonical bullet marker every recognized glyph is mapped to.
const Bullet = "•"

// HeadingPattern pairs a section with its line-anchored heading regex.
type HeadingPattern struct {
	Section types.Section
	Re      *regexp.Regexp
}

// AcronymPair pairs a jargon acronym with the regex matching its spelled-out
// long form.
type AcronymPair struct {
	Acronym  string
	LongForm *regexp.Regexp
}

// Table is the immutable collection of compiled patterns. Access it through
// Default(); tests may build narrower tables if needed.
type Table struct {
	// Normalization
	ZeroWidth  *regexp.Regexp // zero-width and BOM markers
	TabRun     *regexp.Regexp
	BulletRun  *regexp.Regexp // any recognized bullet glyph run
	BlankLines *regexp.Regexp
	SpaceRun   *regexp.Regexp

	// Structure
	Headings     []HeadingPattern
	BulletLine   *regexp.Regexp // line led by a bullet/dash/number marker
	InlineBullet *regexp.Regexp // bullet marker embedded mid-line
	ColumnGap    *regexp.Regexp // wide space run that likely denotes a column break
	MonthRange   *regexp.Regexp
	YearRange    *regexp.Regexp
	Year         *regexp.Regexp

	// ATS metrics
	Metric *regexp.Regexp
	Email  *regexp.Regexp
	Phone  *regexp.Regexp

	AcronymPairs []AcronymPair

	// Validator
	JobPhrases []*regexp.Regexp // job-specific phrasing to neutralize when no job text was supplied

	// Keyword mining
	Token        *regexp.Regexp
	CompanyName  []*regexp.Regexp
	CompanyLabel *regexp.Regexp
}

// headingSynonyms maps each core section to the upper-cased keywords scanned
// as a fallback when line-anchored heading detection finds fewer than the
// four core headings. Matches must be boundary-aware, never substrings of a
// longer word.
var headingSynonyms = map[types.Section][]string{
	types.SectionSummary:    {"SUMMARY", "PROFILE", "OBJECTIVE", "ABOUT ME"},
	types.SectionExperience: {"EXPERIENCE", "EMPLOYMENT", "WORK HISTORY", "CAREER EXPERIENCE", "CAREER HISTORY"},
	types.SectionSkills:     {"SKILLS", "COMPETENCIES", "EXPERTISE", "TECHNOLOGIES", "STRENGTHS"},
	types.SectionEducation:  {"EDUCATION", "ACADEMICS", "ACADEMIC BACKGROUND", "QUALIFICATIONS"},
}

// HeadingSynonyms returns the fallback keyword table for a core section.
func HeadingSynonyms(sec types.Section) []string {
	return headingSynonyms[sec]
}

var defaultTable = &Table{
	ZeroWidth:  regexp.MustCompile(`[\x{200B}\x{200C}\x{200D}\x{2060}\x{FEFF}]`),
	TabRun:     regexp.MustCompile(`\t+`),
	BulletRun:  regexp.MustCompile(`[•●◦▪▫‣·∙○■□➤➢►▶➔➜→]`),
	BlankLines: regexp.MustCompile(`\n{3,}`),
	SpaceRun:   regexp.MustCompile(` {2,}`),

	Headings: []HeadingPattern{
		{types.SectionSummary, regexp.MustCompile(`(?im)^\W{0,3}(professional\s+summary|career\s+summary|summary|profile|objective)\b`)},
		{types.SectionExperience, regexp.MustCompile(`(?im)^\W{0,3}((work|professional|relevant|employment)\s+(experience|history)|experience)\b`)},
		{types.SectionSkills, regexp.MustCompile(`(?im)^\W{0,3}((technical|core|key)\s+(skills|competencies)|skills|competencies)\b`)},
		{types.SectionEducation, regexp.MustCompile(`(?im)^\W{0,3}(education|academics|academic\s+background)\b`)},
		{types.SectionCertifications, regexp.MustCompile(`(?im)^\W{0,3}(certifications?|licenses?\s*(&|and)?\s*certifications?)\b`)},
		{types.SectionProjects, regexp.MustCompile(`(?im)^\W{0,3}(projects|selected\s+projects|key\s+projects)\b`)},
		{types.SectionLeadership, regexp.MustCompile(`(?im)^\W{0,3}(leadership|leadership\s+experience)\b`)},
		{types.SectionAwards, regexp.MustCompile(`(?im)^\W{0,3}(awards|honors|achievements)\b`)},
		{types.SectionVolunteer, regexp.MustCompile(`(?im)^\W{0,3}(volunteer(ing)?|community\s+(service|involvement))\b`)},
	},
	BulletLine:   regexp.MustCompile(`(?m)^\s*(` + Bullet + `|[-*–—]|\d{1,2}[.)])\s+`),
	InlineBullet: regexp.MustCompile(`\s` + Bullet + `\s`),
	ColumnGap:    regexp.MustCompile(` {4,}`),
	MonthRange:   regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+(19|20)\d{2}\s*(?:[-–—]|to)\s*((jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+(19|20)\d{2}|present|current|now)`),
	YearRange:    regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*(?:[-–—]|to)\s*((19|20)\d{2}|present|current|now)\b`),
	Year:         regexp.MustCompile(`\b(19|20)\d{2}\b`),

	Metric: regexp.MustCompile(`(?i)(\$\s?\d[\d,]*(\.\d+)?\s?(k|m|b|mm|million|billion)?|\b\d[\d,]*(\.\d+)?\s?(%|percent|\+|x)|\b\d[\d,]*(\.\d+)?\b)`),
	Email:  regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	Phone:  regexp.MustCompile(`(\+?\d{1,2}[\s.\-]?)?(\(\d{3}\)|\d{3})[\s.\-]?\d{3}[\s.\-]?\d{4}`),

	AcronymPairs: []AcronymPair{
		{"KPI", regexp.MustCompile(`(?i)key\s+performance\s+indicators?`)},
		{"SLA", regexp.MustCompile(`(?i)service[\s-]+level\s+agreements?`)},
		{"ROI", regexp.MustCompile(`(?i)return\s+on\s+investment`)},
		{"TCO", regexp.MustCompile(`(?i)total\s+cost\s+of\s+ownership`)},
		{"OKR", regexp.MustCompile(`(?i)objectives?\s+and\s+key\s+results`)},
	},

	JobPhrases: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bthe\s+job\s+description\b`),
		regexp.MustCompile(`(?i)\bjob\s+description\b`),
		regexp.MustCompile(`(?i)\bjob\s+posting\b`),
		regexp.MustCompile(`(?i)\bthis\s+(role|position|job|opening)\b`),
		regexp.MustCompile(`(?i)\bthe\s+(role|position)\b`),
		regexp.MustCompile(`(?i)\bhiring\s+managers?\b`),
		regexp.MustCompile(`(?i)\bthe\s+employer\b`),
	},

	Token: regexp.MustCompile(`[a-z0-9]+`),
	CompanyName: []*regexp.Regexp{
		regexp.MustCompile(`(?m)^([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3})\s+(?:is|seeks|seeking|looking for)\b`),
		regexp.MustCompile(`\b(?:at|with|for|join|About)\s+([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*){0,3})\b`),
	},
	CompanyLabel: regexp.MustCompile(`(?im)^company\s*:\s*(.+)$`),
}

// Default returns the process-wide pattern table.
func Default() *Table {
	return defaultTable
}
