// Package structure detects layout signals in normalized resume text:
// section headings, bullet density, timeline coverage and paragraph
// density. Signals describe document layout, never content meaning.
package structure

import (
	"strings"

	"github.com/jonathan/resume-critic/internal/patterns"
	"github.com/jonathan/resume-critic/internal/types"
)

// maxParagraphChars is the line length above which a line counts as a dense
// paragraph that ATS parsers tend to mangle.
const maxParagraphChars = 220

// actionVerbs are the verbs a bullet must open with to count as action-led.
// Matching is case-insensitive against the first word after the marker.
var actionVerbs = map[string]bool{
	"achieved": true, "analyzed": true, "architected": true, "automated": true,
	"built": true, "collaborated": true, "coordinated": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "directed": true,
	"drove": true, "established": true, "executed": true, "expanded": true,
	"generated": true, "grew": true, "implemented": true, "improved": true,
	"increased": true, "initiated": true, "launched": true, "led": true,
	"managed": true, "mentored": true, "migrated": true, "negotiated": true,
	"optimized": true, "organized": true, "owned": true, "partnered": true,
	"reduced": true, "redesigned": true, "resolved": true, "scaled": true,
	"spearheaded": true, "streamlined": true, "supervised": true, "trained": true,
}

// Extract derives StructureSignals from normalized resume text. It never
// fails; empty input yields zero counts and all four core sections missing.
func Extract(normalized string) *types.StructureSignals {
	p := patterns.Default()
	signals := &types.StructureSignals{}

	lines := logicalLines(normalized)

	detected := detectHeadings(normalized, lines)
	signals.DetectedSections = detected
	signals.MissingCoreSections = missingCore(detected)

	markerLines := 0
	actionLines := 0
	for _, line := range lines {
		if len(line) > maxParagraphChars {
			signals.DenseParagraphs++
		}
		if !p.BulletLine.MatchString(line) {
			continue
		}
		markerLines++
		if startsWithActionVerb(line) {
			actionLines++
		}
	}

	// PDF and OCR extraction often folds bullets into the middle of a
	// paragraph, so count inline marker segments as well and take the max.
	inlineSegments := strings.Count(normalized, patterns.Bullet)
	signals.BulletLines = max(markerLines, inlineSegments)
	signals.ActionBulletLines = actionLines

	monthRanges := len(p.MonthRange.FindAllString(normalized, -1))
	remainder := p.MonthRange.ReplaceAllString(normalized, " ")
	yearRanges := len(p.YearRange.FindAllString(remainder, -1))
	signals.TimelineEntries = monthRanges + yearRanges

	// Standalone years exclude those already consumed by a range pattern.
	remainder = p.YearRange.ReplaceAllString(remainder, " ")
	signals.StandaloneYears = len(p.Year.FindAllString(remainder, -1))

	return signals
}

// logicalLines splits normalized text into lines, re-breaking before inline
// bullet markers and before wide space runs that likely denote column
// breaks in the source document.
func logicalLines(text string) []string {
	if text == "" {
		return nil
	}
	p := patterns.Default()
	text = p.InlineBullet.ReplaceAllString(text, "\n"+patterns.Bullet+" ")
	text = p.ColumnGap.ReplaceAllString(text, "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// detectHeadings finds section headings with line-anchored patterns, then
// falls back to a boundary-aware scan of the upper-cased text for core
// sections the anchored pass missed.
func detectHeadings(text string, lines []string) []types.Section {
	p := patterns.Default()
	found := make(map[types.Section]bool)

	for _, line := range lines {
		for _, hp := range p.Headings {
			if !found[hp.Section] && hp.Re.MatchString(line) {
				found[hp.Section] = true
			}
		}
	}

	// When anchored detection misses core headings, resumes frequently
	// still name them in decorated or inline forms ("PROFILE", "CAREER
	// EXPERIENCE"). Scan the whole upper-cased text for synonyms.
	if countCore(found) < len(types.CoreSections()) {
		upper := strings.ToUpper(text)
		for _, core := range types.CoreSections() {
			if found[core] {
				continue
			}
			for _, keyword := range patterns.HeadingSynonyms(core) {
				if containsBounded(upper, keyword) {
					found[core] = true
					break
				}
			}
		}
	}

	ordered := make([]types.Section, 0, len(found))
	for _, hp := range p.Headings {
		if found[hp.Section] {
			ordered = append(ordered, hp.Section)
		}
	}
	return ordered
}

// containsBounded reports whether needle occurs in haystack bounded by
// non-alphanumeric characters on both sides, so "ART" never matches inside
// "PARTNER".
func containsBounded(haystack, needle string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		leftOK := idx == 0 || !isAlphaNum(haystack[idx-1])
		rightOK := end == len(haystack) || !isAlphaNum(haystack[end])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
		if start >= len(haystack) {
			return false
		}
	}
}

func isAlphaNum(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

func countCore(found map[types.Section]bool) int {
	n := 0
	for _, core := range types.CoreSections() {
		if found[core] {
			n++
		}
	}
	return n
}

func missingCore(detected []types.Section) []types.Section {
	present := make(map[types.Section]bool, len(detected))
	for _, s := range detected {
		present[s] = true
	}
	missing := make([]types.Section, 0, 4)
	for _, core := range types.CoreSections() {
		if !present[core] {
			missing = append(missing, core)
		}
	}
	return missing
}

// startsWithActionVerb reports whether the line, after stripping its leading
// bullet marker, opens with a recognized action verb.
func startsWithActionVerb(line string) bool {
	stripped := patterns.Default().BulletLine.ReplaceAllString(line, "")
	stripped = strings.TrimLeft(stripped, " •-–—*")
	fields := strings.Fields(strings.ToLower(stripped))
	if len(fields) == 0 {
		return false
	}
	word := strings.Trim(fields[0], ",.;:")
	return actionVerbs[word]
}
