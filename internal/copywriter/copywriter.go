// Package copywriter turns a campaign brief into creative variants ready
// for focus testing.
package copywriter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MBurgo/super-tool/pkg/llm"
)

// Length presets mirror the brief builder's word-count choices.
type Length struct {
	Name     string
	MinWords int
	MaxWords int
}

var (
	LengthShort     = Length{"short", 100, 220}
	LengthMedium    = Length{"medium", 200, 550}
	LengthLong      = Length{"long", 500, 1600}
	LengthExtraLong = Length{"extra_long", 1500, 3200}
)

// LengthByName resolves a preset, defaulting to medium.
func LengthByName(name string) Length {
	switch name {
	case LengthShort.Name:
		return LengthShort
	case LengthLong.Name:
		return LengthLong
	case LengthExtraLong.Name:
		return LengthExtraLong
	default:
		return LengthMedium
	}
}

// BriefInput carries the campaign parameters for a drafting pass.
type BriefInput struct {
	Theme        string
	Hook         string
	Details      string
	OfferPrice   string
	OfferTerm    string
	Structure    string
	Requirements string
}

type Variant struct {
	Copy string
	Plan string
}

type Drafter interface {
	DraftVariants(ctx context.Context, req llm.DraftRequest) ([]llm.DraftedVariant, error)
}

type Generator struct {
	drafter Drafter
}

func NewGenerator(drafter Drafter) *Generator {
	return &Generator{drafter: drafter}
}

// Generate returns up to n variants. Empty copies are dropped and every
// surviving variant ends with the compliance disclaimer.
func (g *Generator) Generate(ctx context.Context, brief BriefInput, format string, n int, length Length) ([]Variant, error) {
	if n < 1 {
		return nil, fmt.Errorf("variant count must be at least 1")
	}

	drafted, err := g.drafter.DraftVariants(ctx, llm.DraftRequest{
		Theme:        brief.Theme,
		Hook:         brief.Hook,
		Details:      brief.Details,
		OfferPrice:   brief.OfferPrice,
		OfferTerm:    brief.OfferTerm,
		Structure:    brief.Structure,
		Requirements: brief.Requirements,
		Format:       format,
		Count:        n,
		MinWords:     length.MinWords,
		MaxWords:     length.MaxWords,
	})
	if err != nil {
		return nil, err
	}

	var out []Variant
	for _, d := range drafted {
		if len(out) >= n {
			break
		}
		text := strings.TrimSpace(d.Copy)
		if text == "" {
			continue
		}
		if !strings.Contains(text, llm.CopyDisclaimer) {
			text = strings.TrimRight(text, " \n") + "\n\n" + llm.CopyDisclaimer
		}
		out = append(out, Variant{Copy: text, Plan: strings.TrimSpace(d.Plan)})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("drafter returned no usable variants")
	}
	return out, nil
}
