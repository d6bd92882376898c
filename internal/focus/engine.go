package focus

import (
	"context"
	"fmt"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/MBurgo/super-tool/internal/model"
	"github.com/MBurgo/super-tool/pkg/llm"
)

// maxSnippetsPerCluster bounds the summarisation prompt size.
const maxSnippetsPerCluster = 12

type Summarizer interface {
	SummarizeTheme(ctx context.Context, snippets []string) (string, error)
}

type Reviser interface {
	Revise(ctx context.Context, creative string, criticism string) (string, error)
}

// Engine runs synthetic focus panels and the iterative revise loop.
type Engine struct {
	reactor    llm.ReactionEngine
	embedder   llm.Embedder
	summarizer Summarizer
	reviser    Reviser
}

func NewEngine(reactor llm.ReactionEngine, embedder llm.Embedder, summarizer Summarizer, reviser Reviser) *Engine {
	return &Engine{
		reactor:    reactor,
		embedder:   embedder,
		summarizer: summarizer,
		reviser:    reviser,
	}
}

type Reaction struct {
	Persona  string
	Feedback string
	Intent   float64
	Cluster  int
}

type Cluster struct {
	Label      int
	Size       int
	MeanIntent float64
	Summary    string
}

// PanelResult is one full pass of the persona panel over a creative.
type PanelResult struct {
	Reactions  []Reaction
	Clusters   []Cluster
	MeanIntent float64
}

// WeakestCluster returns the cluster with the lowest mean intent. The
// second return is false when there are no clusters.
func (p *PanelResult) WeakestCluster() (Cluster, bool) {
	if len(p.Clusters) == 0 {
		return Cluster{}, false
	}
	weakest := p.Clusters[0]
	for _, c := range p.Clusters[1:] {
		if c.MeanIntent < weakest.MeanIntent {
			weakest = c
		}
	}
	return weakest, true
}

type RoundResult struct {
	Round    int
	Creative string
	Panel    *PanelResult
}

type SprintResult struct {
	Rounds     []RoundResult
	FinalCopy  string
	Passed     bool
	MeanIntent float64
}

// RunPanel collects a reaction from every persona, clusters the feedback,
// and summarises each cluster.
func (e *Engine) RunPanel(ctx context.Context, creative string, panel []model.Persona) (*PanelResult, error) {
	if len(panel) == 0 {
		return nil, fmt.Errorf("empty persona panel")
	}

	reactions := make([]Reaction, 0, len(panel))
	feedbacks := make([]string, 0, len(panel))
	var totalIntent float64

	for _, p := range panel {
		profile := llm.PersonaProfile{
			Name:       p.Name,
			Age:        p.Age,
			Occupation: p.Occupation,
			Location:   p.Location,
		}

		r, err := e.reactor.React(ctx, profile, creative)
		if err != nil {
			return nil, fmt.Errorf("reaction for %s: %w", p.Name, err)
		}

		reactions = append(reactions, Reaction{
			Persona:  p.Name,
			Feedback: r.Feedback,
			Intent:   r.Intent,
		})
		feedbacks = append(feedbacks, r.Feedback)
		totalIntent += r.Intent
	}

	labels, err := e.clusterFeedback(ctx, feedbacks)
	if err != nil {
		return nil, err
	}
	for i := range reactions {
		reactions[i].Cluster = labels[i]
	}

	clusterResults, err := e.summarizeClusters(ctx, reactions)
	if err != nil {
		return nil, err
	}

	return &PanelResult{
		Reactions:  reactions,
		Clusters:   clusterResults,
		MeanIntent: totalIntent / float64(len(reactions)),
	}, nil
}

// RunSprint iterates the panel until the threshold is met or maxRounds is
// exhausted. Every round revises the creative with the weakest cluster's
// summary as criticism.
func (e *Engine) RunSprint(ctx context.Context, creative string, panel []model.Persona, threshold float64, maxRounds int) (*SprintResult, error) {
	if maxRounds < 1 {
		return nil, fmt.Errorf("maxRounds must be at least 1")
	}

	current := creative
	result := &SprintResult{}

	for round := 1; round <= maxRounds; round++ {
		panelResult, err := e.RunPanel(ctx, current, panel)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}

		result.Rounds = append(result.Rounds, RoundResult{
			Round:    round,
			Creative: current,
			Panel:    panelResult,
		})
		result.FinalCopy = current
		result.MeanIntent = panelResult.MeanIntent

		if panelResult.MeanIntent >= threshold {
			result.Passed = true
			return result, nil
		}

		if round == maxRounds {
			return result, nil
		}

		weakest, ok := panelResult.WeakestCluster()
		if !ok {
			return result, nil
		}

		revised, err := e.reviser.Revise(ctx, current, weakest.Summary)
		if err != nil {
			return nil, fmt.Errorf("revise after round %d: %w", round, err)
		}
		current = revised
	}

	return result, nil
}

// chooseK mirrors the panel heuristic: 2..5 clusters depending on how much
// feedback there is.
func chooseK(n int) int {
	k := n / 10
	if k < 2 {
		k = 2
	}
	if k > 5 {
		k = 5
	}
	return k
}

// indexedObservation keeps the feedback index with its embedding so cluster
// membership can be mapped back after partitioning.
type indexedObservation struct {
	index  int
	coords clusters.Coordinates
}

func (o indexedObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o indexedObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

func (e *Engine) clusterFeedback(ctx context.Context, feedbacks []string) ([]int, error) {
	labels := make([]int, len(feedbacks))
	if len(feedbacks) < 4 {
		// Too few responses to partition meaningfully.
		return labels, nil
	}

	vecs, err := e.embedder.EmbedTexts(ctx, feedbacks)
	if err != nil {
		return nil, fmt.Errorf("embedding feedback: %w", err)
	}

	var obs clusters.Observations
	for i, v := range vecs {
		obs = append(obs, indexedObservation{index: i, coords: clusters.Coordinates(v)})
	}

	km := kmeans.New()
	partitions, err := km.Partition(obs, chooseK(len(feedbacks)))
	if err != nil {
		return nil, fmt.Errorf("kmeans partition: %w", err)
	}

	for label, cluster := range partitions {
		for _, o := range cluster.Observations {
			labels[o.(indexedObservation).index] = label
		}
	}
	return labels, nil
}

func (e *Engine) summarizeClusters(ctx context.Context, reactions []Reaction) ([]Cluster, error) {
	buckets := make(map[int][]string)
	sums := make(map[int]float64)
	counts := make(map[int]int)

	for _, r := range reactions {
		if len(buckets[r.Cluster]) < maxSnippetsPerCluster {
			buckets[r.Cluster] = append(buckets[r.Cluster], r.Feedback)
		}
		sums[r.Cluster] += r.Intent
		counts[r.Cluster]++
	}

	maxLabel := 0
	for label := range counts {
		if label > maxLabel {
			maxLabel = label
		}
	}

	var out []Cluster
	for label := 0; label <= maxLabel; label++ {
		if counts[label] == 0 {
			continue
		}

		summary, err := e.summarizer.SummarizeTheme(ctx, buckets[label])
		if err != nil {
			return nil, fmt.Errorf("summarizing cluster %d: %w", label, err)
		}

		out = append(out, Cluster{
			Label:      label,
			Size:       counts[label],
			MeanIntent: sums[label] / float64(counts[label]),
			Summary:    summary,
		})
	}
	return out, nil
}
