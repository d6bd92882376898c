package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MBurgo/super-tool/internal/model"
)

const (
	defaultThreshold = 7.0
	defaultMaxRounds = 3
	maxRoundsCap     = 10
)

type SprintStore interface {
	SaveSprint(sprint *model.Sprint) error
	GetByID(id int64) (*model.Sprint, error)
	GetSprints(limit, offset int) ([]model.Sprint, error)
	GetSprintTotal() (int, error)
	GetRounds(sprintID int64) ([]model.SprintRound, error)
	GetReactions(roundID int64) ([]model.PersonaReaction, error)
	GetClusterSummaries(roundID int64) ([]model.ClusterSummary, error)
}

type Enqueuer interface {
	Enqueue(sprintID int64) error
}

type SprintHandler struct {
	repository SprintStore
	queue      Enqueuer
}

func NewSprintHandler(repository SprintStore, queue Enqueuer) *SprintHandler {
	return &SprintHandler{repository: repository, queue: queue}
}

func (h *SprintHandler) CreateSprint(c *gin.Context) {
	var req CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Creative == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "creative is required"})
		return
	}

	if req.Threshold == 0 {
		req.Threshold = defaultThreshold
	}
	if req.Threshold < 0 || req.Threshold > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be between 0 and 10"})
		return
	}

	if req.MaxRounds == 0 {
		req.MaxRounds = defaultMaxRounds
	}
	if req.MaxRounds < 1 || req.MaxRounds > maxRoundsCap {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_rounds must be between 1 and 10"})
		return
	}

	sprint := model.Sprint{
		Creative:  req.Creative,
		Segment:   req.Segment,
		Threshold: req.Threshold,
		MaxRounds: req.MaxRounds,
		Status:    model.StatusPending,
	}

	if err := h.repository.SaveSprint(&sprint); err != nil {
		slog.Error("error saving sprint", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := h.queue.Enqueue(sprint.ID); err != nil {
		slog.Error("error enqueueing sprint", "error", err, "sprint_id", sprint.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Queue error"})
		return
	}

	c.JSON(http.StatusAccepted, toSprintResponse(&sprint))
}

func (h *SprintHandler) GetSprints(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	sprints, err := h.repository.GetSprints(limit, offset)
	if err != nil {
		slog.Error("error fetching sprints", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetSprintTotal()
	if err != nil {
		slog.Error("error fetching sprint total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var sprintRes []SprintResponse
	for i := range sprints {
		sprintRes = append(sprintRes, toSprintResponse(&sprints[i]))
	}

	c.JSON(http.StatusOK, SprintListResponse{
		Sprints: sprintRes,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

func (h *SprintHandler) GetSprint(c *gin.Context) {
	id := c.Param("id")

	sprintID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid sprint id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sprint id"})
		return
	}

	sprint, err := h.repository.GetByID(sprintID)
	if err != nil {
		slog.Error("error fetching sprint", "error", err, "sprint_id", sprintID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if sprint == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sprint not found"})
		return
	}

	rounds, err := h.repository.GetRounds(sprintID)
	if err != nil {
		slog.Error("error fetching rounds", "error", err, "sprint_id", sprintID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var roundRes []RoundResponse
	for _, round := range rounds {
		reactions, err := h.repository.GetReactions(round.ID)
		if err != nil {
			slog.Error("error fetching reactions", "error", err, "round_id", round.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		clusters, err := h.repository.GetClusterSummaries(round.ID)
		if err != nil {
			slog.Error("error fetching cluster summaries", "error", err, "round_id", round.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		var reactionRes []ReactionResponse
		for _, reaction := range reactions {
			reactionRes = append(reactionRes, ReactionResponse{
				Persona:  reaction.Persona,
				Feedback: reaction.Feedback,
				Intent:   reaction.Intent,
				Cluster:  reaction.Cluster,
			})
		}

		var clusterRes []ClusterSummaryResponse
		for _, cluster := range clusters {
			clusterRes = append(clusterRes, ClusterSummaryResponse{
				Label:      cluster.Label,
				Size:       cluster.Size,
				MeanIntent: cluster.MeanIntent,
				Summary:    cluster.Summary,
			})
		}

		roundRes = append(roundRes, RoundResponse{
			Round:      round.Round,
			Creative:   round.Creative,
			MeanIntent: round.MeanIntent,
			Reactions:  reactionRes,
			Clusters:   clusterRes,
		})
	}

	c.JSON(http.StatusOK, SprintDetailResponse{
		SprintResponse: toSprintResponse(sprint),
		Rounds:         roundRes,
	})
}

func toSprintResponse(s *model.Sprint) SprintResponse {
	res := SprintResponse{
		ID:         s.ID,
		Creative:   s.Creative,
		Segment:    s.Segment,
		Threshold:  s.Threshold,
		MaxRounds:  s.MaxRounds,
		Status:     s.Status,
		Passed:     s.Passed,
		FinalCopy:  s.FinalCopy,
		MeanIntent: s.MeanIntent,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
	}
	if s.CompletedAt != nil {
		res.CompletedAt = s.CompletedAt.Format(time.RFC3339)
	}
	return res
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramLimit := c.Query(name)

	if paramLimit == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramLimit)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramLimit, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
