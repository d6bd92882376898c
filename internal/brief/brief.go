// Package brief composes publisher-grade campaign briefs from recent news.
package brief

import (
	"context"
	"fmt"
	"strings"

	"github.com/MBurgo/super-tool/internal/model"
	"github.com/MBurgo/super-tool/pkg/llm"
	"github.com/MBurgo/super-tool/pkg/trends"
)

// DefaultServiceName is the product the CTA angles are tailored to.
const DefaultServiceName = "Share Advisor"

const newsPerBrief = 40

type BriefWriter interface {
	BuildBrief(ctx context.Context, topic string, serviceName string, items []llm.NewsItem) (*llm.BriefResult, error)
	ModelName() string
}

// Builder fetches topical news and asks the LLM for a structured brief.
type Builder struct {
	writer      BriefWriter
	news        trends.NewsSource
	serviceName string
}

func NewBuilder(writer BriefWriter, news trends.NewsSource, serviceName string) *Builder {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	return &Builder{writer: writer, news: news, serviceName: serviceName}
}

func (b *Builder) Build(ctx context.Context, topic string) (*model.CampaignBrief, error) {
	headlines, err := b.news.FetchNews(topic, newsPerBrief)
	if err != nil {
		return nil, fmt.Errorf("fetching news for brief: %w", err)
	}

	items := make([]llm.NewsItem, len(headlines))
	for i, h := range headlines {
		items[i] = llm.NewsItem{
			Title:   h.Title,
			Link:    h.Link,
			Snippet: h.Snippet,
			Source:  h.Source,
			Date:    h.Date,
		}
	}

	result, err := b.writer.BuildBrief(ctx, topic, b.serviceName, items)
	if err != nil {
		return nil, fmt.Errorf("building brief: %w", err)
	}

	return FromResult(topic, result, b.writer.ModelName()), nil
}

// FromResult converts the LLM payload into the persisted brief shape.
func FromResult(topic string, r *llm.BriefResult, modelUsed string) *model.CampaignBrief {
	citations := make([]model.Citation, len(r.Citations))
	for i, c := range r.Citations {
		citations[i] = model.Citation{
			Title:     c.Title,
			Publisher: c.Publisher,
			Date:      c.Date,
			URL:       c.URL,
		}
	}

	return &model.CampaignBrief{
		Topic:          topic,
		Summary:        r.Summary,
		Drivers:        r.Drivers,
		Risks:          r.Risks,
		TalkingPoints:  r.TalkingPoints,
		SEOKeywords:    r.SEOKeywords,
		Hooks:          r.Hooks,
		EmailSubjects:  r.EmailSubjects,
		Headlines:      r.Headlines,
		SocialCaptions: r.SocialCaptions,
		CTAAngles:      r.CTAAngles,
		Notes:          r.Notes,
		Citations:      citations,
		ModelUsed:      modelUsed,
	}
}

// ToMarkdown renders a brief for export. Empty sections are skipped.
func ToMarkdown(b *model.CampaignBrief) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Campaign Brief: %s\n\n", b.Topic))

	section := func(title, body string) {
		if strings.TrimSpace(body) == "" {
			return
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n%s\n\n", title, strings.TrimSpace(body)))
	}
	bullets := func(items []string) string {
		var lines []string
		for _, x := range items {
			lines = append(lines, "- "+x)
		}
		return strings.Join(lines, "\n")
	}

	section("Summary", b.Summary)
	section("Drivers", bullets(b.Drivers))
	section("Risks", bullets(b.Risks))
	section("Talking points", bullets(b.TalkingPoints))
	section("SEO keywords", strings.Join(b.SEOKeywords, ", "))
	section("Hooks", bullets(b.Hooks))
	section("Email subjects", bullets(b.EmailSubjects))
	section("Headlines", bullets(b.Headlines))
	section("Social captions", bullets(b.SocialCaptions))
	section("CTA angles", bullets(b.CTAAngles))
	section("Notes", b.Notes)

	if len(b.Citations) > 0 {
		var lines []string
		for i, c := range b.Citations {
			lines = append(lines, fmt.Sprintf("[%d] %s — %s — %s — %s", i+1, c.Title, c.Publisher, c.Date, c.URL))
		}
		section("Sources", strings.Join(lines, "\n"))
	}

	return sb.String()
}
