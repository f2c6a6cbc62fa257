// Package textnorm canonicalizes raw resume and job-posting text before any
// other analysis runs. Normalization is idempotent and never fails: the
// worst input degrades to an empty string.
package textnorm

import (
	"strings"

	"github.com/jonathan/resume-critic/internal/patterns"
)

// Normalize canonicalizes whitespace, line endings and bullet glyphs.
// The result contains no carriage returns, no tabs, no non-breaking or
// zero-width spaces, at most one consecutive blank line, no runs of more
// than one space, and every recognized bullet glyph mapped to the canonical
// marker. Normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	p := patterns.Default()

	// Exotic whitespace first: NBSP becomes a plain space, zero-width
	// markers vanish entirely.
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = p.ZeroWidth.ReplaceAllString(text, "")

	// Unify line endings.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Tabs collapse to a single space.
	text = p.TabRun.ReplaceAllString(text, " ")

	// Every bullet glyph maps to the canonical marker.
	text = p.BulletRun.ReplaceAllString(text, patterns.Bullet)

	// Trim trailing spaces per line so blank-line collapsing sees true
	// blank lines.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	text = strings.Join(lines, "\n")

	// At most one consecutive blank line, at most one consecutive space.
	text = p.BlankLines.ReplaceAllString(text, "\n\n")
	text = p.SpaceRun.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
