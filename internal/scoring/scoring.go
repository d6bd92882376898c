// Package scoring holds the heuristics used to rank creative variants.
package scoring

import "strings"

func clip(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Composite blends the evaluation signals into a single 0-1 score.
// Persona affinity dominates; compliance is a small but non-zero weight so
// a clean variant always beats an equal dirty one.
func Composite(personaAffinity, predictedCTR, readability, brandFit, compliance float64) float64 {
	return 0.35*clip(personaAffinity) +
		0.25*clip(predictedCTR) +
		0.15*clip(readability) +
		0.15*clip(brandFit) +
		0.10*clip(compliance)
}

// Readability is a length-band heuristic; mid-length copy reads best.
func Readability(creative string) float64 {
	n := len(creative)
	switch {
	case n <= 80:
		return 0.5
	case n >= 1200:
		return 0.3
	case n >= 180 && n <= 480:
		return 0.95
	default:
		return 0.7
	}
}

var hypeWords = []string{"get rich", "secret", "shocking"}
var specificWords = []string{"asx", "etf", "dividend", "small-cap", "small cap"}

// BrandFit rewards specific, numerate copy and penalises hype.
func BrandFit(creative string) float64 {
	lower := strings.ToLower(creative)

	hype := false
	for _, w := range hypeWords {
		if strings.Contains(lower, w) {
			hype = true
			break
		}
	}

	hasNumber := strings.ContainsAny(creative, "0123456789")

	specific := false
	for _, w := range specificWords {
		if strings.Contains(lower, w) {
			specific = true
			break
		}
	}

	// Integer tenths keep the score free of float drift.
	tenths := 7
	if hasNumber {
		tenths++
	}
	if specific {
		tenths++
	}
	if hype {
		tenths -= 3
	}
	return clip(float64(tenths) / 10)
}
