// Package observability provides human-readable output for the CLI's text mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/format-analyzer/internal/formats"
	"github.com/jonathan/format-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the widest score bar
	barWidth = 20
)

// Printer writes boxed summaries of analyzer results.
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
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSuggestion outputs the suggested format, alternatives and top scores.
func (p *Printer) PrintSuggestion(s *types.Suggestion) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:     %s\n", displayName(s.SuggestedFormat)))
	sb.WriteString(fmt.Sprintf("Confidence: %d%%\n", s.Confidence))
	if s.Reason != "" {
		sb.WriteString(fmt.Sprintf("Reason:     %s\n", s.Reason))
	}

	if len(s.Alternatives) > 0 {
		sb.WriteString("\nAlternatives:\n")
		for _, alt := range s.Alternatives {
			sb.WriteString(fmt.Sprintf("  • %s (%d%%)", displayName(alt.Format), alt.Confidence))
			if alt.Reason != "" {
				sb.WriteString(fmt.Sprintf(": %s", alt.Reason))
			}
			sb.WriteString("\n")
		}
	}

	if len(s.Scores) > 0 {
		sb.WriteString("\n")
		sb.WriteString(scoreBars(s.Scores))
	}

	p.printBox("FORMAT SUGGESTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysis outputs scores and the signals that fired.
func (p *Printer) PrintAnalysis(a *types.Analysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format:     %s (%d%%)\n", displayName(a.SuggestedFormat), a.Confidence))
	if len(a.Scores) > 0 {
		sb.WriteString("\n")
		sb.WriteString(scoreBars(a.Scores))
	}

	var active, counts []string
	for name, v := range a.Signals {
		switch val := v.(type) {
		case bool:
			if val {
				active = append(active, name)
			}
		default:
			counts = append(counts, fmt.Sprintf("%s=%v", name, val))
		}
	}
	sort.Strings(active)
	sort.Strings(counts)

	if len(counts) > 0 {
		sb.WriteString(fmt.Sprintf("\nCounts: %s\n", strings.Join(counts, ", ")))
	}
	if len(active) > 0 {
		sb.WriteString("Signals:\n")
		for _, name := range active {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", name))
		}
	}

	p.printBox("CONTENT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the verdict with errors and warnings.
func (p *Printer) PrintValidation(r *types.ValidationResult) {
	if r == nil {
		return
	}

	var sb strings.Builder
	status := "VALID"
	if !r.Valid {
		status = "INVALID"
	}
	sb.WriteString(fmt.Sprintf("Format: %s\n", displayName(r.Format)))
	sb.WriteString(fmt.Sprintf("Status: %s\n", status))

	for _, msg := range r.Messages {
		sb.WriteString(fmt.Sprintf("  ✗ %s\n", msg))
	}
	for _, msg := range r.Warnings {
		sb.WriteString(fmt.Sprintf("  ⚠ %s\n", msg))
	}
	if len(r.Messages) == 0 && len(r.Warnings) == 0 {
		sb.WriteString("  No issues found\n")
	}

	p.printBox("FORMAT VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeights outputs each format's signal weights, heaviest first.
func (p *Printer) PrintWeights(w *types.WeightsResponse) {
	if w == nil || len(w.Formats) == 0 {
		return
	}

	var sb strings.Builder
	for i, fw := range w.Formats {
		header := fmt.Sprintf("%s (max %d", fw.Format, fw.MaxScore)
		if fw.CharacterLimit > 0 {
			header += fmt.Sprintf(", limit %d chars", fw.CharacterLimit)
		}
		sb.WriteString(header + ")\n")

		names := make([]string, 0, len(fw.Signals))
		for name := range fw.Signals {
			names = append(names, name)
		}
		sort.Slice(names, func(a, b int) bool {
			if fw.Signals[names[a]] != fw.Signals[names[b]] {
				return fw.Signals[names[a]] > fw.Signals[names[b]]
			}
			return names[a] < names[b]
		})
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("  %-20s %3d\n", name, fw.Signals[name]))
		}
		if i < len(w.Formats)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SIGNAL WEIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFormats outputs the format registry.
func (p *Printer) PrintFormats(defs []formats.Definition) {
	if len(defs) == 0 {
		return
	}

	var sb strings.Builder
	for _, def := range defs {
		title := "title"
		if !def.TitleVisible {
			title = "no title"
		}
		sb.WriteString(fmt.Sprintf("%-9s %s, %s\n", def.Slug, title, def.MetaBehavior))
	}

	p.printBox("POST FORMATS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatch outputs one line per document and a per-format tally. Documents
// whose current format differs from the suggestion are marked with "!" and
// the mismatch scan is summarized.
func (p *Printer) PrintBatch(resp *types.BatchResponse) {
	if resp == nil || len(resp.Results) == 0 {
		return
	}

	var sb strings.Builder
	tally := make(map[string]int)
	for _, item := range resp.Results {
		if item.Suggestion == nil {
			continue
		}
		tally[item.Suggestion.SuggestedFormat]++
		line := fmt.Sprintf("%-24s %-9s %3d%%", item.ID, item.Suggestion.SuggestedFormat, item.Suggestion.Confidence)
		if item.Mismatch {
			line += fmt.Sprintf(" ! was %s", item.CurrentFormat)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString(fmt.Sprintf("\nAnalyzed %d documents:\n", len(resp.Results)))
	slugs := make([]string, 0, len(tally))
	for slug := range tally {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		sb.WriteString(fmt.Sprintf("  • %s: %d\n", slug, tally[slug]))
	}

	if scan := resp.Scan; scan != nil {
		sb.WriteString(fmt.Sprintf("\nScanned %d with a format: %d correct, %d mismatched\n",
			scan.Scanned, scan.Correct, scan.MismatchCount))
	}

	p.printBox("BATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// scoreBars renders the highest scores as horizontal bars.
func scoreBars(scores map[string]int) string {
	type entry struct {
		format string
		score  int
	}
	entries := make([]entry, 0, len(scores))
	top := 0
	for f, s := range scores {
		entries = append(entries, entry{f, s})
		top = max(top, s)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].format < entries[j].format
	})

	var sb strings.Builder
	sb.WriteString("Scores:\n")
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		n := 0
		if top > 0 {
			n = e.score * barWidth / top
		}
		sb.WriteString(fmt.Sprintf("  %-9s %4d %s\n", e.format, e.score, strings.Repeat("█", n)))
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entries)-maxItemsToShow))
	}
	return sb.String()
}

func displayName(slug string) string {
	if def, ok := formats.Get(slug); ok {
		return def.Name
	}
	return slug
}
