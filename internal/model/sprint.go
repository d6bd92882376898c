package model

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Sprint is one focus-test run: a piece of creative iterated against a
// synthetic persona panel until the intent threshold is met or the round
// budget runs out.
type Sprint struct {
	ID          int64
	Creative    string
	Segment     string
	Threshold   float64
	MaxRounds   int
	Status      string
	Passed      bool
	FinalCopy   string
	MeanIntent  float64
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type SprintRound struct {
	ID         int64
	SprintID   int64
	Round      int
	Creative   string
	MeanIntent float64
	CreatedAt  time.Time
}

type PersonaReaction struct {
	ID       int64
	RoundID  int64
	Persona  string
	Feedback string
	Intent   float64
	Cluster  int
}

type ClusterSummary struct {
	ID         int64
	RoundID    int64
	Label      int
	Size       int
	MeanIntent float64
	Summary    string
}

type ProcessingError struct {
	ID           int64
	SprintID     int64
	ErrorMessage string
	ErrorType    string
	CreatedAt    time.Time
}
