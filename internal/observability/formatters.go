// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
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

// PrintRankedCandidates outputs a human-readable summary of a screening run,
// one box per candidate in rank order.
func (p *Printer) PrintRankedCandidates(candidates []types.Candidate) {
	for rank, candidate := range candidates {
		p.printCandidate(rank+1, candidate)
	}
}

func (p *Printer) printCandidate(rank int, c types.Candidate) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ATS Score:        %d/100\n", c.ATSScore))
	sb.WriteString(fmt.Sprintf("Similarity:       %d/100\n", c.SimilarityScore))
	sb.WriteString(fmt.Sprintf("Experience:       %d year(s)\n", c.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Matched keywords: %s\n", joinLimited(c.MatchedKeywords)))
	if len(c.Feedback.SkillGaps) > 0 {
		sb.WriteString(fmt.Sprintf("Skill gaps:       %s\n", joinLimited(c.Feedback.SkillGaps)))
	}

	sb.WriteString("\nStrengths:\n")
	writeSentences(&sb, c.Feedback.Strengths)
	sb.WriteString("Weaknesses:\n")
	writeSentences(&sb, c.Feedback.Weaknesses)
	sb.WriteString("Suggestions:\n")
	writeSentences(&sb, c.Feedback.Suggestions)

	p.printBox(fmt.Sprintf("#%d  %s", rank, c.Name), strings.TrimRight(sb.String(), "\n"))
}

// joinLimited joins up to maxItemsToShow items, noting how many were omitted.
func joinLimited(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	shown := strings.Join(items[:maxItemsToShow], ", ")
	return fmt.Sprintf("%s (+%d more)", shown, len(items)-maxItemsToShow)
}

func writeSentences(sb *strings.Builder, sentences []string) {
	for _, sentence := range sentences {
		sb.WriteString("  - ")
		sb.WriteString(sentence)
		sb.WriteString("\n")
	}
}
