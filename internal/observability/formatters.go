// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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

// PrintKeywords outputs extracted keywords grouped by category, highest
// importance first within the shown window.
func (p *Printer) PrintKeywords(keywords []types.Keyword) {
	if len(keywords) == 0 {
		p.printBox("EXTRACTED KEYWORDS", "No keywords found.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n\n", len(keywords)))

	count := min(len(keywords), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		kw := keywords[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", kw.Text, kw.Category))
		sb.WriteString(fmt.Sprintf("  count: %d  importance: %.1f\n", kw.Count, kw.Importance))
	}

	if len(keywords) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(keywords)-count))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %d/100\n", analysis.Score))
	sb.WriteString(fmt.Sprintf("Matched:     %d keywords\n", len(analysis.MatchedKeywords)))
	sb.WriteString(fmt.Sprintf("Missing:     %d keywords\n", len(analysis.MissingKeywords)))

	if d := analysis.Detailed; d != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Technical:   %d%%\n", d.TechnicalMatch))
		sb.WriteString(fmt.Sprintf("Soft skills: %d%%\n", d.SoftSkillsMatch))
		sb.WriteString(fmt.Sprintf("ATS score:   %d\n", d.ATSScore))
		sb.WriteString(fmt.Sprintf("Overall fit: %s\n", d.OverallFit))
	}

	if len(analysis.MissingKeywords) > 0 {
		sb.WriteString("\nTop missing:\n")
		count := min(len(analysis.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.MissingKeywords[i].Text))
		}
		if len(analysis.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the analysis suggestions as a list.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("• %s", s))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}

// PrintScore outputs the composite score with its breakdown.
func (p *Printer) PrintScore(result *types.ScoringResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %d/100 (%s)\n\n", result.OverallScore, result.Rank))
	sb.WriteString(fmt.Sprintf("Keyword match:     %d\n", result.Breakdown.KeywordMatch))
	sb.WriteString(fmt.Sprintf("Technical skills:  %d\n", result.Breakdown.TechnicalSkills))
	sb.WriteString(fmt.Sprintf("Experience:        %d\n", result.Breakdown.Experience))
	sb.WriteString(fmt.Sprintf("Formatting:        %d\n", result.Breakdown.Formatting))
	sb.WriteString(fmt.Sprintf("ATS compatibility: %d", result.Breakdown.ATSCompatibility))

	p.printBox("RESUME SCORE", sb.String())

	if len(result.Recommendations) > 0 {
		p.PrintSuggestions(result.Recommendations)
	}
}

// PrintPlan outputs an optimization plan, highest priority first.
func (p *Printer) PrintPlan(plan []types.OptimizationAction) {
	if len(plan) == 0 {
		p.printBox("OPTIMIZATION PLAN", "Nothing to improve. Ship it.")
		return
	}

	var sb strings.Builder
	for i, action := range plan {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", action.Priority, action.Action))
		sb.WriteString(fmt.Sprintf("       impact: %s", action.Impact))
		if i < len(plan)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("OPTIMIZATION PLAN", sb.String())
}

// PrintDiff outputs a version comparison.
func (p *Printer) PrintDiff(diff *types.VersionDiff) {
	if diff == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Keywords added:   %d\n", len(diff.KeywordsAdded)))
	if len(diff.KeywordsAdded) > 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(firstN(diff.KeywordsAdded, maxItemsToShow), ", ")))
	}
	sb.WriteString(fmt.Sprintf("Keywords removed: %d\n", len(diff.KeywordsRemoved)))
	if len(diff.KeywordsRemoved) > 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(firstN(diff.KeywordsRemoved, maxItemsToShow), ", ")))
	}
	sb.WriteString(fmt.Sprintf("Length change:    %+d words\n", diff.LengthChange))
	sb.WriteString(fmt.Sprintf("Score change:     %+d", diff.ScoreChange))

	p.printBox("VERSION COMPARISON", sb.String())
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
