// Package persona loads the seed persona groups and expands them into the
// synthetic panels used for focus testing.
package persona

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/MBurgo/super-tool/internal/model"
)

// SegmentAll selects seeds from every segment.
const SegmentAll = "All Segments"

const defaultAssetPath = "assets/personas.json"

type personasFile struct {
	Personas []model.PersonaGroup `json:"personas"`
}

// LoadGroups reads the grouped personas file. An empty path falls back to
// the PERSONAS_PATH env var, then the repo asset.
func LoadGroups(path string) ([]model.PersonaGroup, error) {
	if path == "" {
		path = os.Getenv("PERSONAS_PATH")
	}
	if path == "" {
		path = defaultAssetPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("personas file not found at %s (set PERSONAS_PATH to override): %w", path, err)
	}

	var parsed personasFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parsing personas file: %w", err)
	}
	if len(parsed.Personas) == 0 {
		return nil, fmt.Errorf("personas file %s contains no groups", path)
	}

	for _, g := range parsed.Personas {
		patchDefaults(g.Male, g.Segment)
		patchDefaults(g.Female, g.Segment)
	}
	return parsed.Personas, nil
}

// patchDefaults fills the fields the reaction prompt requires so downstream
// code never sees a blank profile.
func patchDefaults(p *model.Persona, segment string) {
	if p == nil {
		return
	}
	p.Segment = segment
	if p.Age == 0 {
		p.Age = 35
	}
	if p.Occupation == "" {
		p.Occupation = "Investor"
	}
	if p.Location == "" {
		p.Location = "Australia"
	}
	if p.Income == 0 {
		p.Income = 80000
	}
}

// Panel expands seeds from the chosen segment into a panel of size mutated
// variants. Mutation jitters age and income so the panel is not fifty
// identical respondents.
func Panel(groups []model.PersonaGroup, segment string, size int, rng *rand.Rand) []model.Persona {
	var seeds []model.Persona
	for _, g := range groups {
		if segment != SegmentAll && g.Segment != segment {
			continue
		}
		if g.Male != nil {
			seeds = append(seeds, *g.Male)
		}
		if g.Female != nil {
			seeds = append(seeds, *g.Female)
		}
	}
	if len(seeds) == 0 {
		return nil
	}

	panel := make([]model.Persona, 0, size)
	for i := 0; len(panel) < size; i++ {
		seed := seeds[rng.Intn(len(seeds))]
		panel = append(panel, mutate(seed, i, rng))
	}
	return panel
}

func mutate(seed model.Persona, idx int, rng *rand.Rand) model.Persona {
	p := seed

	first := p.Name
	if sp := strings.IndexByte(first, ' '); sp > 0 {
		first = first[:sp]
	}
	p.Name = fmt.Sprintf("%s Variant %d", first, idx+1)

	lo := seed.Age - 5
	if lo < 18 {
		lo = 18
	}
	hi := seed.Age + 5
	p.Age = lo + rng.Intn(hi-lo+1)

	p.Income = int(float64(seed.Income) * (0.7 + rng.Float64()*0.6))

	return p
}
