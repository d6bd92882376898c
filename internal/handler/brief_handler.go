package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MBurgo/super-tool/internal/model"
)

type BriefStore interface {
	SaveBrief(brief *model.CampaignBrief) error
	GetBriefs(limit, offset int) ([]model.CampaignBrief, error)
	GetBriefByID(id int64) (*model.CampaignBrief, error)
	GetBriefTotal() (int, error)
}

type BriefBuilder interface {
	Build(ctx context.Context, topic string) (*model.CampaignBrief, error)
}

type BriefHandler struct {
	repository BriefStore
	builder    BriefBuilder
}

func NewBriefHandler(repository BriefStore, builder BriefBuilder) *BriefHandler {
	return &BriefHandler{repository: repository, builder: builder}
}

// CreateBrief builds a brief synchronously. Brief generation is a single
// LLM call over fetched headlines, so unlike sprints it does not go
// through the queue.
func (h *BriefHandler) CreateBrief(c *gin.Context) {
	var req CreateBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	brief, err := h.builder.Build(c.Request.Context(), req.Topic)
	if err != nil {
		slog.Error("error building brief", "error", err, "topic", req.Topic)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Brief generation failed"})
		return
	}

	if err := h.repository.SaveBrief(brief); err != nil {
		slog.Error("error saving brief", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, toBriefResponse(brief))
}

func (h *BriefHandler) GetBriefs(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	briefs, err := h.repository.GetBriefs(limit, offset)
	if err != nil {
		slog.Error("error fetching briefs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetBriefTotal()
	if err != nil {
		slog.Error("error fetching brief total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var briefRes []BriefResponse
	for i := range briefs {
		briefRes = append(briefRes, toBriefResponse(&briefs[i]))
	}

	c.JSON(http.StatusOK, BriefListResponse{
		Briefs: briefRes,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

func (h *BriefHandler) GetBrief(c *gin.Context) {
	id := c.Param("id")

	briefID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid brief id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brief id"})
		return
	}

	brief, err := h.repository.GetBriefByID(briefID)
	if err != nil {
		slog.Error("error fetching brief", "error", err, "brief_id", briefID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if brief == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brief not found"})
		return
	}

	c.JSON(http.StatusOK, toBriefResponse(brief))
}

func toBriefResponse(b *model.CampaignBrief) BriefResponse {
	var citations []CitationResponse
	for _, c := range b.Citations {
		citations = append(citations, CitationResponse{
			Title:     c.Title,
			Publisher: c.Publisher,
			Date:      c.Date,
			URL:       c.URL,
		})
	}

	return BriefResponse{
		ID:             b.ID,
		Topic:          b.Topic,
		Summary:        b.Summary,
		Drivers:        b.Drivers,
		Risks:          b.Risks,
		TalkingPoints:  b.TalkingPoints,
		SEOKeywords:    b.SEOKeywords,
		Hooks:          b.Hooks,
		EmailSubjects:  b.EmailSubjects,
		Headlines:      b.Headlines,
		SocialCaptions: b.SocialCaptions,
		CTAAngles:      b.CTAAngles,
		Notes:          b.Notes,
		Citations:      citations,
		ModelUsed:      b.ModelUsed,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}
