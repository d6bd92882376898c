// Package flow coordinates the guided campaign workflow: trend discovery,
// theme selection, copy drafting, and focus testing. Keeping the state
// machine here lets the behaviour be tested without HTTP or LLM calls.
package flow

import (
	"fmt"

	"github.com/MBurgo/super-tool/pkg/trends"
)

type Stage string

const (
	StageStart         Stage = "start"
	StageChooseTheme   Stage = "choose_theme"
	StageDraftVariants Stage = "draft_variants"
	StageFocusTest     Stage = "focus_test"
	StageComplete      Stage = "complete"
)

// TrendPayload is the data returned from the trend discovery step.
type TrendPayload struct {
	Rising []trends.RisingQuery
	News   []trends.Headline
	Themes []string
}

// Iteration is the result of a single pass through the persona focus group.
type Iteration struct {
	Round      int
	Creative   string
	Summary    string
	MeanIntent float64
}

// Outcome holds the finalised focus-testing artefacts.
type Outcome struct {
	Iterations []Iteration
	FinalCopy  string
	Passed     bool
}

// State tracks progress through the guided flow.
type State struct {
	Stage       Stage
	Trends      *TrendPayload
	ChosenTheme string
	Variants    []string
	FocusResult *Outcome
	FocusSource string
}

func NewState() *State {
	return &State{Stage: StageStart}
}

// Reset returns the workflow to the initial stage.
func (s *State) Reset() {
	s.Stage = StageStart
	s.Trends = nil
	s.ChosenTheme = ""
	s.Variants = nil
	s.FocusResult = nil
	s.FocusSource = ""
}

// DiscoverTrends fetches the latest trends and primes the state for theme
// selection.
func DiscoverTrends(s *State, fetch func() ([]trends.RisingQuery, []trends.Headline, error)) (*TrendPayload, error) {
	rising, news, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("trend discovery: %w", err)
	}

	var themes []string
	for i, q := range rising {
		if i >= 10 {
			break
		}
		themes = append(themes, fmt.Sprintf("%s — %.0f", q.Query, q.Value))
	}

	payload := &TrendPayload{Rising: rising, News: news, Themes: themes}
	s.Reset()
	s.Trends = payload
	s.Stage = StageChooseTheme
	return payload, nil
}

// ChooseTheme stores the selected theme and advances to variant drafting.
func ChooseTheme(s *State, theme string) error {
	if s.Stage != StageChooseTheme && s.Stage != StageDraftVariants {
		return fmt.Errorf("cannot choose a theme before discovering trends")
	}

	s.ChosenTheme = theme
	s.Stage = StageDraftVariants
	s.Variants = nil
	s.FocusResult = nil
	s.FocusSource = ""
	return nil
}

// GenerateVariants drafts creative variants for the chosen theme.
func GenerateVariants(s *State, generate func() ([]string, error)) ([]string, error) {
	if s.Stage != StageDraftVariants {
		return nil, fmt.Errorf("variants can only be generated after choosing a theme")
	}

	variants, err := generate()
	if err != nil {
		return nil, err
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("generator must return at least one variant")
	}

	s.Variants = variants
	return variants, nil
}

// BeginFocusTesting primes the state for the focus-testing loop.
func BeginFocusTesting(s *State, baseCopy string) error {
	if s.Stage != StageDraftVariants {
		return fmt.Errorf("cannot begin focus testing before drafting variants")
	}

	s.FocusSource = baseCopy
	s.FocusResult = nil
	s.Stage = StageFocusTest
	return nil
}

// ExecuteFocusTesting runs iterative focus testing until the copy passes or
// the round budget expires.
func ExecuteFocusTesting(
	s *State,
	test func(creative string, round int) (Iteration, error),
	improve func(creative string, it Iteration) (string, error),
	threshold float64,
	maxRounds int,
) (*Outcome, error) {
	if maxRounds < 1 {
		return nil, fmt.Errorf("maxRounds must be at least 1")
	}
	if s.Stage != StageFocusTest && s.Stage != StageComplete {
		return nil, fmt.Errorf("focus testing can only run after being prepared")
	}
	if s.FocusSource == "" {
		return nil, fmt.Errorf("no base copy available for focus testing")
	}

	current := s.FocusSource
	outcome := &Outcome{}

	for round := 1; round <= maxRounds; round++ {
		it, err := test(current, round)
		if err != nil {
			return nil, fmt.Errorf("focus round %d: %w", round, err)
		}
		outcome.Iterations = append(outcome.Iterations, it)

		if it.MeanIntent >= threshold {
			outcome.Passed = true
			outcome.FinalCopy = it.Creative
			break
		}

		if round == maxRounds {
			outcome.FinalCopy = it.Creative
			break
		}

		current, err = improve(it.Creative, it)
		if err != nil {
			return nil, fmt.Errorf("improving after round %d: %w", round, err)
		}
	}

	s.FocusResult = outcome
	s.Stage = StageComplete
	s.FocusSource = outcome.FinalCopy
	return outcome, nil
}
