package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/MBurgo/super-tool/internal/copywriter"
)

type fakeGenerator struct {
	variants []copywriter.Variant
	err      error
	lastN    int
}

func (f *fakeGenerator) Generate(ctx context.Context, brief copywriter.BriefInput, format string, n int, length copywriter.Length) ([]copywriter.Variant, error) {
	f.lastN = n
	return f.variants, f.err
}

func newVariantRouter(generator VariantGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewVariantHandler(generator)
	r.POST("/variants", h.CreateVariants)
	return r
}

func TestCreateVariants_ScoresAndFlags(t *testing.T) {
	clean := "Three ASX dividend payers our analysts rate for income in 2026, with yields above 5% and franking intact."
	dirty := "Guaranteed returns with no risk, this tiny stock will double your money overnight, trust us completely on it."
	generator := &fakeGenerator{variants: []copywriter.Variant{
		{Copy: clean, Plan: "lead with yield"},
		{Copy: dirty},
	}}
	r := newVariantRouter(generator)

	body := `{"theme": "dividends", "count": 2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/variants", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, generator.lastN)

	var res VariantListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res.Variants))

	assert.Equal(t, false, res.Variants[0].Flags.ForbiddenClaims)
	assert.Equal(t, 1.0, res.Variants[0].Scores.Compliance)
	assert.Equal(t, "lead with yield", res.Variants[0].Plan)

	assert.Equal(t, true, res.Variants[1].Flags.ForbiddenClaims)
	assert.Equal(t, 0.0, res.Variants[1].Scores.Compliance)
	if res.Variants[1].Scores.Composite >= res.Variants[0].Scores.Composite {
		t.Errorf("flagged variant outscored clean one: %f >= %f",
			res.Variants[1].Scores.Composite, res.Variants[0].Scores.Composite)
	}
}

func TestCreateVariants_DefaultCount(t *testing.T) {
	generator := &fakeGenerator{variants: []copywriter.Variant{{Copy: "Solid copy about ASX shares that is long enough to pass the short check."}}}
	r := newVariantRouter(generator)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/variants", strings.NewReader(`{"theme": "dividends"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, generator.lastN)
}

func TestCreateVariants_MissingTheme(t *testing.T) {
	r := newVariantRouter(&fakeGenerator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/variants", strings.NewReader(`{"count": 2}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVariants_GeneratorError(t *testing.T) {
	r := newVariantRouter(&fakeGenerator{err: errors.New("openai down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/variants", strings.NewReader(`{"theme": "dividends"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
