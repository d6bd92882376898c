package handler

type CreateSprintRequest struct {
	Creative  string  `json:"creative"`
	Segment   string  `json:"segment"`
	Threshold float64 `json:"threshold"`
	MaxRounds int     `json:"max_rounds"`
}

type SprintResponse struct {
	ID          int64   `json:"id"`
	Creative    string  `json:"creative"`
	Segment     string  `json:"segment"`
	Threshold   float64 `json:"threshold"`
	MaxRounds   int     `json:"max_rounds"`
	Status      string  `json:"status"`
	Passed      bool    `json:"passed"`
	FinalCopy   string  `json:"final_copy"`
	MeanIntent  float64 `json:"mean_intent"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt string  `json:"completed_at,omitempty"`
}

type SprintListResponse struct {
	Sprints []SprintResponse `json:"sprints"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

type RoundResponse struct {
	Round      int                      `json:"round"`
	Creative   string                   `json:"creative"`
	MeanIntent float64                  `json:"mean_intent"`
	Reactions  []ReactionResponse       `json:"reactions"`
	Clusters   []ClusterSummaryResponse `json:"clusters"`
}

type ReactionResponse struct {
	Persona  string  `json:"persona"`
	Feedback string  `json:"feedback"`
	Intent   float64 `json:"intent"`
	Cluster  int     `json:"cluster"`
}

type ClusterSummaryResponse struct {
	Label      int     `json:"label"`
	Size       int     `json:"size"`
	MeanIntent float64 `json:"mean_intent"`
	Summary    string  `json:"summary"`
}

type SprintDetailResponse struct {
	SprintResponse
	Rounds []RoundResponse `json:"rounds"`
}

type CreateBriefRequest struct {
	Topic string `json:"topic"`
}

type BriefResponse struct {
	ID             int64              `json:"id"`
	Topic          string             `json:"topic"`
	Summary        string             `json:"summary"`
	Drivers        []string           `json:"drivers"`
	Risks          []string           `json:"risks"`
	TalkingPoints  []string           `json:"talking_points"`
	SEOKeywords    []string           `json:"seo_keywords"`
	Hooks          []string           `json:"hooks"`
	EmailSubjects  []string           `json:"email_subjects"`
	Headlines      []string           `json:"headlines"`
	SocialCaptions []string           `json:"social_captions"`
	CTAAngles      []string           `json:"cta_angles"`
	Notes          string             `json:"notes"`
	Citations      []CitationResponse `json:"citations"`
	ModelUsed      string             `json:"model_used"`
	CreatedAt      string             `json:"created_at"`
}

type CitationResponse struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`
	URL       string `json:"url"`
}

type BriefListResponse struct {
	Briefs []BriefResponse `json:"briefs"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type CreateVariantsRequest struct {
	Theme        string `json:"theme"`
	Hook         string `json:"hook"`
	Details      string `json:"details"`
	OfferPrice   string `json:"offer_price"`
	OfferTerm    string `json:"offer_term"`
	Structure    string `json:"structure"`
	Requirements string `json:"requirements"`
	Format       string `json:"format"`
	Count        int    `json:"count"`
	Length       string `json:"length"`
}

type VariantFlags struct {
	ForbiddenClaims bool `json:"forbidden_claims"`
	LengthTooLong   bool `json:"length_too_long"`
	LengthTooShort  bool `json:"length_too_short"`
}

type VariantScores struct {
	Readability float64 `json:"readability"`
	BrandFit    float64 `json:"brand_fit"`
	Compliance  float64 `json:"compliance"`
	Composite   float64 `json:"composite"`
}

type VariantResponse struct {
	Copy   string        `json:"copy"`
	Plan   string        `json:"plan"`
	Flags  VariantFlags  `json:"flags"`
	Scores VariantScores `json:"scores"`
}

type VariantListResponse struct {
	Variants []VariantResponse `json:"variants"`
}

type ThemeResponse struct {
	ID       int64                  `json:"id"`
	Label    string                 `json:"label"`
	Score    float64                `json:"score"`
	Reason   string                 `json:"reason"`
	Keywords []string               `json:"keywords"`
	Articles []ThemeArticleResponse `json:"articles"`
}

type ThemeArticleResponse struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

type PersonaResponse struct {
	Name       string   `json:"name"`
	Segment    string   `json:"segment"`
	Age        int      `json:"age"`
	Occupation string   `json:"occupation"`
	Location   string   `json:"location"`
	Income     int      `json:"income"`
	Goals      []string `json:"goals,omitempty"`
	Fears      []string `json:"fears,omitempty"`
}
