// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-critic/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func statusMark(status string) string {
	switch status {
	case types.StatusGood:
		return "✓"
	case types.StatusCritical:
		return "✗"
	default:
		return "⚠"
	}
}

// PrintScoreSummary outputs the overall score and per-category breakdown.
func (p *Printer) PrintScoreSummary(critique *types.Critique) {
	if critique == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score: %.0f/100\n", critique.OverallScore))

	if len(critique.Categories) > 0 {
		sb.WriteString("\nCategories:\n")
		for _, cat := range critique.Categories {
			sb.WriteString(fmt.Sprintf("  %s %-26s %3.0f\n", statusMark(cat.Status), cat.Name, cat.Score))
		}
	}

	p.printBox("CRITIQUE SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs the critical keywords recommended for the resume.
func (p *Printer) PrintKeywords(critique *types.Critique) {
	if critique == nil || len(critique.CriticalKeywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommended keywords (%d):\n\n", len(critique.CriticalKeywords)))

	count := min(len(critique.CriticalKeywords), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", critique.CriticalKeywords[i]))
	}
	if len(critique.CriticalKeywords) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(critique.CriticalKeywords)-count))
	}

	p.printBox("CRITICAL KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs the insight cards with their tips.
func (p *Printer) PrintInsights(critique *types.Critique) {
	if critique == nil || len(critique.Insights) == 0 {
		return
	}

	var sb strings.Builder
	for i, card := range critique.Insights {
		sb.WriteString(fmt.Sprintf("%s %s\n", statusMark(card.Status), card.Title))

		details := card.Details
		if len(details) > 50 {
			details = details[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", details))

		tips := min(len(card.Tips), 3)
		for j := 0; j < tips; j++ {
			tip := card.Tips[j]
			if len(tip) > 48 {
				tip = tip[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  - %s\n", tip))
		}
		if i < len(critique.Insights)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs parse-friendliness warnings found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(critique *types.Critique) {
	if critique == nil || len(critique.ATSWarnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO ATS WARNINGS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(critique.ATSWarnings)))

	for i, w := range critique.ATSWarnings {
		if len(w) > 52 {
			w = w[:49] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", w))
		if i < len(critique.ATSWarnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ATS WARNINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCritique prints the full verbose report for a critique.
func (p *Printer) PrintCritique(critique *types.Critique) {
	p.PrintScoreSummary(critique)
	p.PrintKeywords(critique)
	p.PrintInsights(critique)
	p.PrintWarnings(critique)
}
