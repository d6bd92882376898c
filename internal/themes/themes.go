// Package themes distils raw headlines into campaign-ready themes.
package themes

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MBurgo/super-tool/internal/model"
	"github.com/MBurgo/super-tool/pkg/llm"
	"github.com/MBurgo/super-tool/pkg/trends"
)

const maxThemes = 10

// Labeler groups headlines into named themes.
type Labeler interface {
	DeriveThemes(ctx context.Context, items []llm.NewsItem) ([]llm.ThemeResult, error)
}

// Derive clusters the day's headlines into themes, attaching the source
// articles to each. When no headlines are available the rising queries
// become lightweight themes so the flow can still progress.
func Derive(ctx context.Context, labeler Labeler, news []trends.Headline, rising []trends.RisingQuery) ([]model.Theme, error) {
	news = dedupe(news)

	if len(news) == 0 {
		return fromRising(rising), nil
	}

	items := make([]llm.NewsItem, len(news))
	for i, h := range news {
		items[i] = llm.NewsItem{Title: h.Title, Link: h.Link, Snippet: h.Snippet, Source: h.Source, Date: h.Date}
	}

	results, err := labeler.DeriveThemes(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("deriving themes: %w", err)
	}

	var out []model.Theme
	for _, r := range results {
		label := strings.TrimSpace(r.Label)
		if label == "" {
			continue
		}

		var articles []model.ThemeArticle
		for _, idx := range r.ArticleIndices {
			if idx < 0 || idx >= len(news) {
				continue
			}
			h := news[idx]
			articles = append(articles, model.ThemeArticle{Title: h.Title, Link: h.Link, Source: h.Source, Date: h.Date})
		}
		if len(articles) == 0 {
			continue
		}

		out = append(out, model.Theme{
			Label:    label,
			Score:    float64(len(articles)),
			Reason:   strings.TrimSpace(r.Reason),
			Keywords: r.Keywords,
			Articles: articles,
		})
	}

	return rankThemes(out), nil
}

func fromRising(rising []trends.RisingQuery) []model.Theme {
	var out []model.Theme
	for _, q := range rising {
		query := strings.TrimSpace(q.Query)
		if query == "" {
			continue
		}
		out = append(out, model.Theme{
			Label:    query,
			Score:    q.Value,
			Reason:   "rising search interest",
			Keywords: []string{query},
		})
	}
	return rankThemes(out)
}

// rankThemes orders by score descending, label as tiebreak, and applies the
// theme cap. The model's own ordering is not trusted.
func rankThemes(ts []model.Theme) []model.Theme {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Score != ts[j].Score {
			return ts[i].Score > ts[j].Score
		}
		return ts[i].Label < ts[j].Label
	})
	if len(ts) > maxThemes {
		ts = ts[:maxThemes]
	}
	return ts
}

func dedupe(news []trends.Headline) []trends.Headline {
	seen := make(map[string]bool, len(news))
	var out []trends.Headline
	for _, h := range news {
		key := strings.ToLower(strings.TrimSpace(h.Title)) + "|" + strings.ToLower(strings.TrimSpace(h.Source))
		if key == "|" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}
