// Package guardrails applies compliance checks to generated creative before
// it reaches a focus panel or a publisher.
package guardrails

import "regexp"

const (
	maxCopyLength = 1200
	minCopyLength = 60
)

// ComplianceDisclaimer is appended to copy heading out of the tool.
const ComplianceDisclaimer = "General advice only. Consider your objectives and circumstances. " +
	"Past performance is not a reliable indicator of future results."

var bannedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bguaranteed returns?\b`),
	regexp.MustCompile(`(?i)\bno risk\b`),
	regexp.MustCompile(`(?i)\bget\s+rich\b`),
	regexp.MustCompile(`(?i)\bwill\s+double\b`),
}

type Flags struct {
	ForbiddenClaims bool
	LengthTooLong   bool
	LengthTooShort  bool
}

// Any reports whether any guardrail tripped.
func (f Flags) Any() bool {
	return f.ForbiddenClaims || f.LengthTooLong || f.LengthTooShort
}

func Check(creative string) Flags {
	flags := Flags{
		LengthTooLong:  len(creative) > maxCopyLength,
		LengthTooShort: len(creative) < minCopyLength,
	}
	for _, p := range bannedPatterns {
		if p.MatchString(creative) {
			flags.ForbiddenClaims = true
			break
		}
	}
	return flags
}

func AddComplianceDisclaimer(body string) string {
	return body + "\n\n" + ComplianceDisclaimer
}
