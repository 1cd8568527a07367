package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramihatou97/dcs-sub003/internal/model"
	"github.com/ramihatou97/dcs-sub003/internal/orchestrator"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	ratingColor  = map[string]lipgloss.Color{
		"excellent":    lipgloss.Color("#8BC34A"),
		"good":         lipgloss.Color("#2196F3"),
		"acceptable":   lipgloss.Color("#FFC107"),
		"needs-review": lipgloss.Color("#e53935"),
	}
	issueColor = map[model.Severity]lipgloss.Color{
		model.SeverityCritical: lipgloss.Color("#e53935"),
		model.SeverityMajor:    lipgloss.Color("#FFC107"),
		model.SeverityMinor:    lipgloss.Color("#2196F3"),
		model.SeverityWarning:  lipgloss.Color("#2196F3"),
	}
)

func renderResponse(resp orchestrator.Response) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("DISCHARGE SUMMARY"))
	b.WriteString("\n\n")
	for _, key := range model.AllSectionKeys {
		text := resp.Narrative.Get(key)
		if text == "" {
			continue
		}
		b.WriteString(labelStyle.Render(string(key)))
		b.WriteString("\n")
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	b.WriteString(renderQuality(resp.Quality))
	b.WriteString("\n")
	b.WriteString(renderMetadata(resp.Metadata))
	return b.String()
}

func renderQuality(report model.QualityReport) string {
	var b strings.Builder
	rating := model.Rating(report.Overall)
	ratingStyle := lipgloss.NewStyle().Bold(true).Foreground(ratingColorFor(rating))

	b.WriteString(headingStyle.Render("QUALITY REPORT"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall: %.2f (%s)\n", report.Overall, ratingStyle.Render(rating)))
	if report.Incomplete {
		b.WriteString(lipgloss.NewStyle().Foreground(issueColor[model.SeverityCritical]).Render("INCOMPLETE: a critical section is empty"))
		b.WriteString("\n")
	}

	for _, dim := range []model.DimensionName{
		model.DimensionCompleteness, model.DimensionAccuracy, model.DimensionConsistency,
		model.DimensionNarrativeQuality, model.DimensionSpecificity, model.DimensionTimeliness,
	} {
		score, ok := report.Dimensions[dim]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-18s %.2f\n", dim, score.Score))
	}

	if len(report.Issues) > 0 {
		b.WriteString("\nIssues:\n")
		for _, issue := range report.Issues {
			style := lipgloss.NewStyle().Foreground(issueColor[issue.Severity])
			b.WriteString(fmt.Sprintf("  [%s] %s\n", style.Render(string(issue.Severity)), issue.Message))
		}
	}
	return b.String()
}

func renderMetadata(meta orchestrator.Metadata) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("METADATA"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  requestId:         %s\n", meta.RequestID))
	b.WriteString(fmt.Sprintf("  processingTimeMs: %d\n", meta.ProcessingTimeMs))
	b.WriteString(fmt.Sprintf("  providerUsed:      %s\n", valueOrNone(meta.ProviderUsed)))
	b.WriteString(fmt.Sprintf("  fallbacksFired:    %s\n", joinOrNone(meta.FallbacksFired)))
	b.WriteString(fmt.Sprintf("  cacheHits:         %d\n", meta.CacheHits))
	b.WriteString(fmt.Sprintf("  iterations:        %d\n", meta.Iterations))
	return b.String()
}

func ratingColorFor(rating string) lipgloss.Color {
	if c, ok := ratingColor[rating]; ok {
		return c
	}
	return lipgloss.Color("#f2f2f2")
}

func valueOrNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func joinOrNone(ss []string) string {
	if len(ss) == 0 {
		return "none"
	}
	return strings.Join(ss, ", ")
}
