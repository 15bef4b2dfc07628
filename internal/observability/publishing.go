package observability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/format-analyzer/internal/mf2"
	"github.com/jonathan/format-analyzer/internal/syndication"
)

// PrintSyndication outputs each prepared copy with its length check.
func (p *Printer) PrintSyndication(r *syndication.Result) {
	if r == nil || len(r.Posts) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Format: %s\n", displayName(r.Format)))
	for _, post := range r.Posts {
		target := post.Target
		if target == "" {
			target = "generic"
		}
		status := "ok"
		if !post.Valid {
			status = "too long"
		}
		sb.WriteString(fmt.Sprintf("\n%s (%d chars, %s)\n", target, post.CharCount, status))
		for _, line := range strings.Split(post.Text, "\n") {
			sb.WriteString("  " + line + "\n")
		}
		for _, item := range post.Media {
			sb.WriteString(fmt.Sprintf("  + %s %s\n", item.Type, item.URL))
		}
	}

	p.printBox("SYNDICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTargets outputs the known syndication targets.
func (p *Printer) PrintTargets(targets []syndication.Target) {
	if len(targets) == 0 {
		return
	}

	var sb strings.Builder
	for _, t := range targets {
		limit := "no limit"
		if t.CharLimit > 0 {
			limit = fmt.Sprintf("%d chars", t.CharLimit)
		}
		sb.WriteString(fmt.Sprintf("%-9s %-10s %s\n", t.ID, limit, strings.Join(t.MediaTypes, ", ")))
	}

	p.printBox("SYNDICATION TARGETS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMF2 outputs the h-entry classes, its properties and any missing ones.
func (p *Printer) PrintMF2(r *mf2.Result) {
	if r == nil || r.Markup == nil {
		return
	}

	var sb strings.Builder
	status := "VALID"
	if !r.Valid {
		status = "INVALID"
	}
	sb.WriteString(fmt.Sprintf("Format:  %s\n", displayName(r.Markup.Format)))
	sb.WriteString(fmt.Sprintf("Entry:   %s\n", r.Markup.EntryClass))
	sb.WriteString(fmt.Sprintf("Content: %s\n", r.Markup.ContentClass))
	sb.WriteString(fmt.Sprintf("Status:  %s\n", status))

	names := make([]string, 0, len(r.Markup.Properties))
	for name := range r.Markup.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	sb.WriteString("\nProperties:\n")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %-13s %s\n", name, propertySummary(r.Markup.Properties[name])))
	}

	for _, msg := range r.Errors {
		sb.WriteString(fmt.Sprintf("  ✗ %s\n", msg))
	}

	p.printBox("MICROFORMATS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClasses outputs the microformats classes for every format.
func (p *Printer) PrintClasses(all []mf2.FormatClasses) {
	if len(all) == 0 {
		return
	}

	var sb strings.Builder
	for _, fc := range all {
		sb.WriteString(fmt.Sprintf("%-9s %s / %s\n", fc.Format, fc.Entry, fc.Content))
	}

	p.printBox("MICROFORMATS CLASSES", strings.TrimSuffix(sb.String(), "\n"))
}

func propertySummary(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case string:
			parts = append(parts, v)
		case mf2.ContentValue:
			parts = append(parts, v.Value)
		case mf2.Item:
			parts = append(parts, strings.Join(v.Type, " "))
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(strings.Fields(strings.Join(parts, ", ")), " ")
}
