package copywriter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/MBurgo/super-tool/pkg/llm"
)

type fakeDrafter struct {
	variants []llm.DraftedVariant
	err      error
	lastReq  llm.DraftRequest
}

func (f *fakeDrafter) DraftVariants(ctx context.Context, req llm.DraftRequest) ([]llm.DraftedVariant, error) {
	f.lastReq = req
	return f.variants, f.err
}

func TestGenerateAppendsDisclaimer(t *testing.T) {
	drafter := &fakeDrafter{variants: []llm.DraftedVariant{
		{Copy: "Three ASX shares our analysts are watching.", Plan: "lead with scarcity"},
	}}
	g := NewGenerator(drafter)

	out, err := g.Generate(context.Background(), BriefInput{Theme: "dividends"}, "email_subject", 3, LengthMedium)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, true, strings.HasSuffix(out[0].Copy, llm.CopyDisclaimer))
	assert.Equal(t, "lead with scarcity", out[0].Plan)
}

func TestGenerateKeepsExistingDisclaimer(t *testing.T) {
	text := "Solid copy here.\n\n" + llm.CopyDisclaimer
	drafter := &fakeDrafter{variants: []llm.DraftedVariant{{Copy: text}}}
	g := NewGenerator(drafter)

	out, err := g.Generate(context.Background(), BriefInput{}, "sales_page", 1, LengthShort)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, strings.Count(out[0].Copy, llm.CopyDisclaimer))
}

func TestGenerateDropsEmptyAndCaps(t *testing.T) {
	drafter := &fakeDrafter{variants: []llm.DraftedVariant{
		{Copy: "   "},
		{Copy: "Variant one."},
		{Copy: "Variant two."},
		{Copy: "Variant three."},
	}}
	g := NewGenerator(drafter)

	out, err := g.Generate(context.Background(), BriefInput{}, "sales_page", 2, LengthMedium)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(out))
	assert.Equal(t, true, strings.HasPrefix(out[0].Copy, "Variant one."))
}

func TestGenerateAllEmptyFails(t *testing.T) {
	drafter := &fakeDrafter{variants: []llm.DraftedVariant{{Copy: ""}, {Copy: "  "}}}
	g := NewGenerator(drafter)

	_, err := g.Generate(context.Background(), BriefInput{}, "sales_page", 2, LengthMedium)

	assert.NotEqual(t, nil, err)
}

func TestGeneratePassesLengthBounds(t *testing.T) {
	drafter := &fakeDrafter{variants: []llm.DraftedVariant{{Copy: "ok"}}}
	g := NewGenerator(drafter)

	_, err := g.Generate(context.Background(), BriefInput{}, "sales_page", 1, LengthLong)

	assert.Equal(t, nil, err)
	assert.Equal(t, 500, drafter.lastReq.MinWords)
	assert.Equal(t, 1600, drafter.lastReq.MaxWords)
	assert.Equal(t, 1, drafter.lastReq.Count)
}

func TestGenerateDrafterError(t *testing.T) {
	g := NewGenerator(&fakeDrafter{err: errors.New("openai down")})

	_, err := g.Generate(context.Background(), BriefInput{}, "sales_page", 1, LengthMedium)

	assert.NotEqual(t, nil, err)
}

func TestLengthByName(t *testing.T) {
	assert.Equal(t, LengthShort, LengthByName("short"))
	assert.Equal(t, LengthExtraLong, LengthByName("extra_long"))
	assert.Equal(t, LengthMedium, LengthByName("anything else"))
}
