package llm

import "context"

// PersonaProfile is the slice of a persona the reaction prompt needs.
type PersonaProfile struct {
	Name       string
	Age        int
	Occupation string
	Location   string
}

// Reaction is one simulated persona response to a piece of creative.
type Reaction struct {
	Feedback string
	Intent   float64
}

// NewsItem is a headline handed to the brief and theming prompts.
type NewsItem struct {
	Title   string
	Link    string
	Snippet string
	Source  string
	Date    string
}

type ThemeResult struct {
	Label          string
	Reason         string
	Keywords       []string
	ArticleIndices []int
}

type BriefResult struct {
	Summary        string     `json:"summary"`
	Drivers        []string   `json:"drivers"`
	Risks          []string   `json:"risks"`
	TalkingPoints  []string   `json:"talking_points"`
	SEOKeywords    []string   `json:"seo_keywords"`
	Hooks          []string   `json:"hooks"`
	EmailSubjects  []string   `json:"email_subjects"`
	Headlines      []string   `json:"headlines"`
	SocialCaptions []string   `json:"social_captions"`
	CTAAngles      []string   `json:"cta_angles"`
	Notes          string     `json:"notes"`
	Citations      []Citation `json:"citations"`
}

type Citation struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`
	URL       string `json:"url"`
}

// DraftRequest carries the campaign parameters for variant generation.
type DraftRequest struct {
	Theme        string
	Hook         string
	Details      string
	OfferPrice   string
	OfferTerm    string
	Structure    string
	Requirements string
	Format       string
	Count        int
	MinWords     int
	MaxWords     int
}

type DraftedVariant struct {
	Copy string `json:"copy"`
	Plan string `json:"plan"`
}

type ReactionEngine interface {
	React(ctx context.Context, persona PersonaProfile, creative string) (*Reaction, error)
}

type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
}
