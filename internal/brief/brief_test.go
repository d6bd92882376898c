package brief

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/MBurgo/super-tool/internal/model"
	"github.com/MBurgo/super-tool/pkg/llm"
	"github.com/MBurgo/super-tool/pkg/trends"
)

type fakeWriter struct {
	result    *llm.BriefResult
	err       error
	lastItems []llm.NewsItem
}

func (f *fakeWriter) BuildBrief(ctx context.Context, topic string, serviceName string, items []llm.NewsItem) (*llm.BriefResult, error) {
	f.lastItems = items
	return f.result, f.err
}

func (f *fakeWriter) ModelName() string { return "gpt-4o-mini" }

type fakeNews struct {
	headlines []trends.Headline
	err       error
}

func (f *fakeNews) FetchNews(query string, limit int) ([]trends.Headline, error) {
	return f.headlines, f.err
}

func (f *fakeNews) Name() string { return "fake" }

func TestBuildBrief(t *testing.T) {
	writer := &fakeWriter{result: &llm.BriefResult{
		Summary:   "The ASX had a strong week.",
		Drivers:   []string{"rate cut hopes"},
		CTAAngles: []string{"Share Advisor: starter portfolio"},
		Citations: []llm.Citation{{Title: "ASX record", Publisher: "AFR"}},
	}}
	news := &fakeNews{headlines: []trends.Headline{
		{Title: "ASX record", Source: "AFR", Snippet: "Index up 1.2%"},
	}}

	b := NewBuilder(writer, news, "")

	out, err := b.Build(context.Background(), "asx 200")

	assert.Equal(t, nil, err)
	assert.Equal(t, "asx 200", out.Topic)
	assert.Equal(t, "The ASX had a strong week.", out.Summary)
	assert.Equal(t, "gpt-4o-mini", out.ModelUsed)
	assert.Equal(t, 1, len(out.Citations))
	assert.Equal(t, "AFR", out.Citations[0].Publisher)
	assert.Equal(t, 1, len(writer.lastItems))
	assert.Equal(t, "ASX record", writer.lastItems[0].Title)
}

func TestBuildBriefNewsError(t *testing.T) {
	b := NewBuilder(&fakeWriter{}, &fakeNews{err: errors.New("serpapi down")}, "")

	_, err := b.Build(context.Background(), "asx 200")

	assert.NotEqual(t, nil, err)
}

func TestToMarkdownSkipsEmptySections(t *testing.T) {
	md := ToMarkdown(&model.CampaignBrief{
		Topic:   "Dividend season",
		Summary: "Banks lifted payouts.",
		Drivers: []string{"strong margins", "capital returns"},
		Citations: []model.Citation{
			{Title: "CBA lifts dividend", Publisher: "AFR", Date: "2025-10-06", URL: "https://afr.com/cba"},
		},
	})

	assert.Equal(t, true, strings.HasPrefix(md, "# Campaign Brief: Dividend season"))
	assert.Equal(t, true, strings.Contains(md, "## Summary"))
	assert.Equal(t, true, strings.Contains(md, "- strong margins"))
	assert.Equal(t, true, strings.Contains(md, "[1] CBA lifts dividend — AFR — 2025-10-06 — https://afr.com/cba"))
	// Sections with no content never render.
	assert.Equal(t, false, strings.Contains(md, "## Risks"))
	assert.Equal(t, false, strings.Contains(md, "## Notes"))
}
