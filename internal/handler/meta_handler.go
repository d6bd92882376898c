package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MBurgo/super-tool/internal/model"
)

type ThemeStore interface {
	GetLatestThemes(limit int) ([]model.Theme, error)
}

type PersonaSource interface {
	Groups() []model.PersonaGroup
}

type MetaHandler struct {
	themes   ThemeStore
	personas PersonaSource
	health   func() error
}

func NewMetaHandler(themes ThemeStore, personas PersonaSource, health func() error) *MetaHandler {
	return &MetaHandler{themes: themes, personas: personas, health: health}
}

func (h *MetaHandler) GetThemes(c *gin.Context) {
	limit := getQueryLimit(c)

	themes, err := h.themes.GetLatestThemes(limit)
	if err != nil {
		slog.Error("error fetching themes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var res []ThemeResponse
	for _, t := range themes {
		var articles []ThemeArticleResponse
		for _, a := range t.Articles {
			articles = append(articles, ThemeArticleResponse{
				Title:  a.Title,
				Link:   a.Link,
				Source: a.Source,
				Date:   a.Date,
			})
		}
		res = append(res, ThemeResponse{
			ID:       t.ID,
			Label:    t.Label,
			Score:    t.Score,
			Reason:   t.Reason,
			Keywords: t.Keywords,
			Articles: articles,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *MetaHandler) GetPersonas(c *gin.Context) {
	var res []PersonaResponse
	for _, group := range h.personas.Groups() {
		for _, p := range []*model.Persona{group.Male, group.Female} {
			if p == nil {
				continue
			}
			res = append(res, PersonaResponse{
				Name:       p.Name,
				Segment:    p.Segment,
				Age:        p.Age,
				Occupation: p.Occupation,
				Location:   p.Location,
				Income:     p.Income,
				Goals:      p.Goals,
				Fears:      p.Fears,
			})
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *MetaHandler) GetHealth(c *gin.Context) {
	if err := h.health(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
