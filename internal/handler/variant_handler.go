package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MBurgo/super-tool/internal/copywriter"
	"github.com/MBurgo/super-tool/internal/guardrails"
	"github.com/MBurgo/super-tool/internal/scoring"
)

// Draft-time scores have no panel data yet, so affinity and CTR enter the
// composite at a neutral midpoint.
const neutralSignal = 0.5

type VariantGenerator interface {
	Generate(ctx context.Context, brief copywriter.BriefInput, format string, n int, length copywriter.Length) ([]copywriter.Variant, error)
}

type VariantHandler struct {
	generator VariantGenerator
}

func NewVariantHandler(generator VariantGenerator) *VariantHandler {
	return &VariantHandler{generator: generator}
}

func (h *VariantHandler) CreateVariants(c *gin.Context) {
	var req CreateVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Theme == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme is required"})
		return
	}

	if req.Count == 0 {
		req.Count = 3
	}
	if req.Count < 1 || req.Count > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count must be between 1 and 10"})
		return
	}

	brief := copywriter.BriefInput{
		Theme:        req.Theme,
		Hook:         req.Hook,
		Details:      req.Details,
		OfferPrice:   req.OfferPrice,
		OfferTerm:    req.OfferTerm,
		Structure:    req.Structure,
		Requirements: req.Requirements,
	}

	variants, err := h.generator.Generate(c.Request.Context(), brief, req.Format, req.Count, copywriter.LengthByName(req.Length))
	if err != nil {
		slog.Error("error generating variants", "error", err, "theme", req.Theme)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Variant generation failed"})
		return
	}

	var res []VariantResponse
	for _, v := range variants {
		flags := guardrails.Check(v.Copy)

		compliance := 1.0
		if flags.Any() {
			compliance = 0
		}
		readability := scoring.Readability(v.Copy)
		brandFit := scoring.BrandFit(v.Copy)

		res = append(res, VariantResponse{
			Copy: v.Copy,
			Plan: v.Plan,
			Flags: VariantFlags{
				ForbiddenClaims: flags.ForbiddenClaims,
				LengthTooLong:   flags.LengthTooLong,
				LengthTooShort:  flags.LengthTooShort,
			},
			Scores: VariantScores{
				Readability: readability,
				BrandFit:    brandFit,
				Compliance:  compliance,
				Composite:   scoring.Composite(neutralSignal, neutralSignal, readability, brandFit, compliance),
			},
		})
	}

	c.JSON(http.StatusOK, VariantListResponse{Variants: res})
}
