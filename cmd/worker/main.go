package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/MBurgo/super-tool/db"
	"github.com/MBurgo/super-tool/internal/focus"
	"github.com/MBurgo/super-tool/internal/model"
	"github.com/MBurgo/super-tool/internal/persona"
	"github.com/MBurgo/super-tool/internal/repository"
	"github.com/MBurgo/super-tool/pkg/llm"
)

const (
	maxRetries = 3
	panelSize  = 30
	popTimeout = 0
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	groups, err := persona.LoadGroups("")
	if err != nil {
		log.Fatalf("error loading personas: %v", err)
	}

	sprintRepository := repository.NewSprintRepository(db.DB)

	openAIClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	var reactor llm.ReactionEngine = openAIClient
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		reactor = llm.NewAnthropicClient(key)
	}

	engine := focus.NewEngine(reactor, openAIClient, openAIClient, openAIClient)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ctx := context.Background()

	for {
		id, err := db.PopFromQueue(db.SprintQueueKey, popTimeout)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		sprintID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slog.Error("invalid sprint id in queue", "id", id, "error", err)
			continue
		}

		errorCount, err := sprintRepository.GetErrorCount(sprintID)
		if err != nil {
			slog.Error("error getting error count", "error", err, "sprint_id", sprintID)
			continue
		}

		if errorCount >= maxRetries {
			slog.Warn("sprint exceeded max retries, marking as failed", "sprint_id", sprintID, "error_count", errorCount)
			sprintRepository.UpdateStatus(sprintID, model.StatusFailed)
			db.PushToQueue(db.DeadLetterKey, id)
			continue
		}

		sprint, err := sprintRepository.GetByID(sprintID)
		if err != nil {
			slog.Error("error getting sprint from DB", "error", err, "sprint_id", sprintID)
			continue
		}

		if sprint == nil {
			slog.Warn("sprint not found in DB", "sprint_id", sprintID)
			continue
		}

		panel := persona.Panel(groups, sprint.Segment, panelSize, rng)
		if len(panel) == 0 {
			slog.Warn("no personas for segment, marking as failed", "sprint_id", sprintID, "segment", sprint.Segment)
			sprintRepository.SaveError(sprintID, "no personas for segment "+sprint.Segment, "panel_error")
			sprintRepository.UpdateStatus(sprintID, model.StatusFailed)
			continue
		}

		sprintRepository.UpdateStatus(sprintID, model.StatusProcessing)

		result, err := engine.RunSprint(ctx, sprint.Creative, panel, sprint.Threshold, sprint.MaxRounds)
		if err != nil {
			slog.Error("error running sprint", "error", err, "sprint_id", sprintID)

			sprintRepository.SaveError(sprintID, err.Error(), "llm_error")
			sprintRepository.UpdateStatus(sprintID, model.StatusPending)

			db.PushToQueue(db.SprintQueueKey, id)

			time.Sleep(5 * time.Second)
			continue
		}

		sprint.Passed = result.Passed
		sprint.FinalCopy = result.FinalCopy
		sprint.MeanIntent = result.MeanIntent

		rounds := make([]model.SprintRound, 0, len(result.Rounds))
		reactions := make(map[int][]model.PersonaReaction)
		clusters := make(map[int][]model.ClusterSummary)

		for _, r := range result.Rounds {
			rounds = append(rounds, model.SprintRound{
				Round:      r.Round,
				Creative:   r.Creative,
				MeanIntent: r.Panel.MeanIntent,
			})

			for _, reaction := range r.Panel.Reactions {
				reactions[r.Round] = append(reactions[r.Round], model.PersonaReaction{
					Persona:  reaction.Persona,
					Feedback: reaction.Feedback,
					Intent:   reaction.Intent,
					Cluster:  reaction.Cluster,
				})
			}

			for _, cluster := range r.Panel.Clusters {
				clusters[r.Round] = append(clusters[r.Round], model.ClusterSummary{
					Label:      cluster.Label,
					Size:       cluster.Size,
					MeanIntent: cluster.MeanIntent,
					Summary:    cluster.Summary,
				})
			}
		}

		err = sprintRepository.SaveResult(sprint, rounds, reactions, clusters)
		if err != nil {
			slog.Error("error saving sprint result", "error", err, "sprint_id", sprintID)

			sprintRepository.SaveError(sprintID, err.Error(), "db_error")
			sprintRepository.UpdateStatus(sprintID, model.StatusPending)

			db.PushToQueue(db.SprintQueueKey, id)

			time.Sleep(5 * time.Second)
			continue
		}

		slog.Info("sprint completed", "sprint_id", sprintID, "passed", result.Passed,
			"mean_intent", result.MeanIntent, "rounds", len(result.Rounds))
	}
}
