// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/mentor-match/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintUserTags outputs a human-readable summary of the canonicalized user tags.
func (p *Printer) PrintUserTags(tags *types.CanonicalTagSet) {
	if tags == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Version:  %s\n", tags.Version))
	sb.WriteString("\n")

	if len(tags.Topics) > 0 {
		sb.WriteString("Topics:\n")
		for _, topic := range tags.Topics {
			sb.WriteString(fmt.Sprintf("  • %s\n", topic))
		}
		sb.WriteString("\n")
	}

	if len(tags.Stacks) > 0 {
		sb.WriteString("Stacks:\n")
		for _, stack := range tags.Stacks {
			sb.WriteString(fmt.Sprintf("  • %s\n", stack))
		}
		sb.WriteString("\n")
	}

	if len(tags.Categories) > 0 {
		sb.WriteString(fmt.Sprintf("Categories: %s\n", strings.Join(tags.Categories, ", ")))
	}

	if len(tags.UnknownItems) > 0 {
		sb.WriteString("\nUnmatched:\n")
		count := min(len(tags.UnknownItems), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", tags.UnknownItems[i].Raw))
		}
		if len(tags.UnknownItems) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(tags.UnknownItems)-maxItemsToShow))
		}
	}

	p.printBox("User Tags", strings.TrimRight(sb.String(), "\n"))
}

// PrintRanking outputs the ranked candidate list with score components.
func (p *Printer) PrintRanking(ranked []types.RankedCandidate) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	for i, candidate := range ranked {
		sb.WriteString(fmt.Sprintf("%2d. [%d] %s  total=%.6f\n",
			i+1, candidate.MentorID, candidate.MentorName, candidate.TotalScore))
		sb.WriteString(fmt.Sprintf("      topic=%.6f stack=%.6f quality=%.6f\n",
			candidate.TopicMatch, candidate.StackMatch, candidate.Quality))
		if len(candidate.OverlapTopics) > 0 || len(candidate.OverlapStacks) > 0 {
			overlap := append(append([]string{}, candidate.OverlapTopics...), candidate.OverlapStacks...)
			sb.WriteString(fmt.Sprintf("      overlap: %s\n", strings.Join(overlap, ", ")))
		}
	}

	p.printBox("Ranking", strings.TrimRight(sb.String(), "\n"))
}

// PrintCards outputs the enrichment cards, flagging fallbacks.
func (p *Printer) PrintCards(cards []types.Card) {
	if len(cards) == 0 {
		return
	}

	var sb strings.Builder
	for _, card := range cards {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", card.MentorID, card.OneLineReason))
		if len(card.OverlapTags) > 0 {
			sb.WriteString(fmt.Sprintf("    tags: %s\n", strings.Join(card.OverlapTags, ", ")))
		}
		for _, point := range card.CautionPoints {
			sb.WriteString(fmt.Sprintf("    ! %s\n", point))
		}
		if card.Diagnostic != "" {
			sb.WriteString(fmt.Sprintf("    (fallback: %s)\n", card.Diagnostic))
		}
	}

	p.printBox("Cards", strings.TrimRight(sb.String(), "\n"))
}
