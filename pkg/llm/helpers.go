package llm

import (
	"fmt"
	"strings"
)

const maxSnippetChars = 200
const maxBriefItems = 18

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func formatNewsForClustering(items []NewsItem) string {
	var sb strings.Builder
	for i, n := range items {
		sb.WriteString(fmt.Sprintf("[%d] Title: %s\n", i, n.Title))
		if n.Snippet != "" {
			sb.WriteString(fmt.Sprintf("    Snippet: %s\n", truncate(n.Snippet, maxSnippetChars)))
		}
		sb.WriteString(fmt.Sprintf("    Source: %s\n", n.Source))
		if n.Date != "" {
			sb.WriteString(fmt.Sprintf("    Date: %s\n", n.Date))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatNewsForBrief(items []NewsItem) string {
	var sb strings.Builder
	for i, n := range items {
		if i >= maxBriefItems {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. %s — %s — %s\n", i+1, n.Title, n.Source, n.Date))
		if n.Snippet != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", n.Snippet))
		}
		if n.Link != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", n.Link))
		}
	}
	return sb.String()
}
