package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/kirillkom/content-analyzer/internal/core/domain"
)

func renderResult(w io.Writer, result domain.AnalysisResult) {
	fmt.Fprintf(w, "Engagement score: %s/100\n\n", scoreColor(result.Score).Sprint(result.Score))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoWrapText(false)
	table.Append([]string{"Characters", strconv.Itoa(result.Metrics.CharacterCount)})
	table.Append([]string{"Words", strconv.Itoa(result.Metrics.WordCount)})
	table.Append([]string{"Emojis", strconv.Itoa(result.Metrics.EmojiCount)})
	table.Append([]string{"Hashtags", strconv.Itoa(result.Metrics.HashtagCount)})
	table.Append([]string{"Has questions", strconv.FormatBool(result.Metrics.HasQuestions)})
	table.Render()

	if len(result.Suggestions) == 0 {
		fmt.Fprintln(w, "\nNo suggestions.")
		return
	}
	fmt.Fprintln(w, "\nSuggestions:")
	for i, s := range result.Suggestions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
}

func scoreColor(score int) color.Color {
	switch {
	case score >= 70:
		return color.Green
	case score >= 50:
		return color.Yellow
	default:
		return color.Red
	}
}
