package scoring

import (
	"math"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func closeTo(t *testing.T, want, got float64) {
	t.Helper()
	if math.Abs(want-got) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCompositeWeights(t *testing.T) {
	// All signals at 1.0 sum to 1.0.
	closeTo(t, 1.0, Composite(1, 1, 1, 1, 1))

	// Inputs clip to [0,1] before weighting.
	closeTo(t, 0.35, Composite(5, 0, 0, 0, 0))
	closeTo(t, 0.0, Composite(-1, -1, -1, -1, -1))

	// Affinity outweighs every other single signal.
	if Composite(1, 0, 0, 0, 0) <= Composite(0, 1, 0, 0, 0) {
		t.Error("persona affinity should carry the largest weight")
	}
}

func TestReadabilityBands(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"very short", "Buy shares.", 0.5},
		{"sweet spot", strings.Repeat("x", 300), 0.95},
		{"moderate", strings.Repeat("x", 700), 0.7},
		{"too long", strings.Repeat("x", 1500), 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Readability(tt.text))
		})
	}
}

func TestBrandFit(t *testing.T) {
	// Baseline copy with no signals either way.
	closeTo(t, 0.7, BrandFit("An interesting idea for your portfolio."))

	// Numbers and finance specificity both reward.
	closeTo(t, 0.9, BrandFit("3 ASX dividend shares to watch this quarter."))

	// Hype is penalised even when specific.
	closeTo(t, 0.5, BrandFit("The secret ASX stock that made members wealthy."))
}
