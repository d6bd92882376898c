package persona

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/MBurgo/super-tool/internal/model"
)

const samplePersonas = `{
  "personas": [
    {
      "segment": "Young Accumulators",
      "male": {"name": "Liam Chen", "age": 28, "occupation": "Software Engineer", "location": "Sydney", "income": 110000},
      "female": {"name": "Sophie Nguyen", "age": 26, "occupation": "Nurse", "location": "Melbourne", "income": 78000}
    },
    {
      "segment": "Pre-Retirees",
      "male": {"name": "Graham Walker", "age": 58, "occupation": "Accountant", "location": "Brisbane", "income": 135000}
    }
  ]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "personas.json")
	if err := os.WriteFile(path, []byte(samplePersonas), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGroups(t *testing.T) {
	groups, err := LoadGroups(writeSample(t))

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(groups))
	assert.Equal(t, "Young Accumulators", groups[0].Segment)
	assert.Equal(t, "Liam Chen", groups[0].Male.Name)
	assert.Equal(t, "Young Accumulators", groups[0].Male.Segment)
	assert.Equal(t, (*model.Persona)(nil), groups[1].Female)
}

func TestLoadGroupsPatchesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.json")
	raw := `{"personas":[{"segment":"Sparse","male":{"name":"Just A Name"}}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	groups, err := LoadGroups(path)

	assert.Equal(t, nil, err)
	p := groups[0].Male
	assert.Equal(t, 35, p.Age)
	assert.Equal(t, "Investor", p.Occupation)
	assert.Equal(t, "Australia", p.Location)
	assert.Equal(t, 80000, p.Income)
}

func TestLoadGroupsMissingFile(t *testing.T) {
	_, err := LoadGroups(filepath.Join(t.TempDir(), "nope.json"))

	assert.NotEqual(t, nil, err)
}

func TestPanelSizeAndSegmentFilter(t *testing.T) {
	groups, err := LoadGroups(writeSample(t))
	assert.Equal(t, nil, err)

	rng := rand.New(rand.NewSource(42))
	panel := Panel(groups, "Young Accumulators", 50, rng)

	assert.Equal(t, 50, len(panel))
	for _, p := range panel {
		assert.Equal(t, "Young Accumulators", p.Segment)
		if p.Age < 18 {
			t.Errorf("mutated age below 18: %d", p.Age)
		}
	}
}

func TestPanelAllSegments(t *testing.T) {
	groups, err := LoadGroups(writeSample(t))
	assert.Equal(t, nil, err)

	rng := rand.New(rand.NewSource(42))
	panel := Panel(groups, SegmentAll, 20, rng)

	assert.Equal(t, 20, len(panel))

	segments := make(map[string]bool)
	for _, p := range panel {
		segments[p.Segment] = true
	}
	// With three seeds across two segments and twenty draws, both segments
	// should appear.
	assert.Equal(t, 2, len(segments))
}

func TestPanelUnknownSegment(t *testing.T) {
	groups, err := LoadGroups(writeSample(t))
	assert.Equal(t, nil, err)

	panel := Panel(groups, "Nonexistent", 10, rand.New(rand.NewSource(1)))

	assert.Equal(t, 0, len(panel))
}

func TestMutateJittersWithinBounds(t *testing.T) {
	seed := model.Persona{Name: "Graham Walker", Age: 58, Income: 100000, Occupation: "Accountant", Location: "Brisbane"}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		p := mutate(seed, i, rng)
		if p.Age < 53 || p.Age > 63 {
			t.Fatalf("age %d outside seed±5", p.Age)
		}
		if p.Income < 70000 || p.Income > 130000 {
			t.Fatalf("income %d outside 0.7x-1.3x of seed", p.Income)
		}
		assert.Equal(t, "Accountant", p.Occupation)
	}
	assert.Equal(t, "Graham Variant 1", mutate(seed, 0, rng).Name)
}
