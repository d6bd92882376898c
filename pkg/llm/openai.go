package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CopyDisclaimer must close every generated variant.
const CopyDisclaimer = "*Past performance is not a reliable indicator of future results.*"

type OpenAIClient struct {
	client     *openai.Client
	model      openai.ChatModel
	embedModel openai.EmbeddingModel
	modelName  string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:     &client,
		model:      openai.ChatModelGPT4oMini,
		embedModel: openai.EmbeddingModelTextEmbedding3Small,
		modelName:  "gpt-4o-mini",
	}
}

func (c *OpenAIClient) ModelName() string {
	return c.modelName
}

func (c *OpenAIClient) chat(ctx context.Context, system string, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

// React simulates a single persona reading the creative.
func (c *OpenAIClient) React(ctx context.Context, persona PersonaProfile, creative string) (*Reaction, error) {
	prompt := fmt.Sprintf(reactionTemplate,
		persona.Name, persona.Age, persona.Occupation, persona.Location, creative)

	text, err := c.chat(ctx, reactionSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	feedback, intent := splitReaction(text)
	return &Reaction{Feedback: feedback, Intent: intent}, nil
}

func (c *OpenAIClient) SummarizeTheme(ctx context.Context, snippets []string) (string, error) {
	text, err := c.chat(ctx, clusterSummarySystemPrompt, clusterSummaryPrompt+strings.Join(snippets, "\n---\n"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Revise rewrites the creative using the weakest cluster's criticism.
func (c *OpenAIClient) Revise(ctx context.Context, creative string, criticism string) (string, error) {
	text, err := c.chat(ctx, reviseSystemPrompt, fmt.Sprintf(reviseTemplate, criticism, creative))
	if err != nil {
		return "", err
	}

	revised := strings.TrimSpace(text)
	if revised == "" {
		return "", fmt.Errorf("empty revision from openai")
	}
	return revised, nil
}

func (c *OpenAIClient) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: c.embedModel,
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings error: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai returned %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	vecs := make([][]float64, len(resp.Data))
	for i, row := range resp.Data {
		vecs[i] = row.Embedding
	}
	return vecs, nil
}

// DeriveThemes clusters headlines into ranked campaign themes.
func (c *OpenAIClient) DeriveThemes(ctx context.Context, items []NewsItem) ([]ThemeResult, error) {
	content, err := c.chat(ctx, themeClusterPrompt, formatNewsForClustering(items))
	if err != nil {
		return nil, fmt.Errorf("openai theme pass error: %w", err)
	}

	content = cleanJSONResponse(content)

	var parsed struct {
		Themes []struct {
			Label          string   `json:"label"`
			Reason         string   `json:"reason"`
			Keywords       []string `json:"keywords"`
			ArticleIndices []int    `json:"article_indices"`
		} `json:"themes"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse theme response: %w, content: %s", err, content)
	}

	themes := make([]ThemeResult, 0, len(parsed.Themes))
	for _, t := range parsed.Themes {
		themes = append(themes, ThemeResult{
			Label:          strings.TrimSpace(t.Label),
			Reason:         strings.TrimSpace(t.Reason),
			Keywords:       t.Keywords,
			ArticleIndices: t.ArticleIndices,
		})
	}
	return themes, nil
}

// BuildBrief composes a structured campaign brief from a topic and headlines.
func (c *OpenAIClient) BuildBrief(ctx context.Context, topic string, serviceName string, items []NewsItem) (*BriefResult, error) {
	system := fmt.Sprintf(briefSystemTemplate, "Australia", briefSchemaExample, serviceName)
	user := fmt.Sprintf(briefUserTemplate, topic, formatNewsForBrief(items), serviceName)

	content, err := c.chat(ctx, system, user)
	if err != nil {
		return nil, err
	}

	content = cleanJSONResponse(content)

	var parsed BriefResult
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse brief response: %w, content: %s", err, content)
	}

	shapeBrief(&parsed)
	return &parsed, nil
}

// DraftVariants generates alternative creatives for a campaign brief.
func (c *OpenAIClient) DraftVariants(ctx context.Context, req DraftRequest) ([]DraftedVariant, error) {
	structure := req.Structure
	if structure == "" {
		structure = "Hook, Problem, Insight, Proof, Offer, CTA"
	}
	requirements := req.Requirements
	if requirements == "" {
		requirements = "Avoid promissory language. Mention risk. Include price and term."
	}

	system := fmt.Sprintf(draftSystemTemplate, CopyDisclaimer)
	user := fmt.Sprintf(draftUserTemplate,
		req.Count, strings.ReplaceAll(req.Format, "_", " "),
		req.MinWords, req.MaxWords, CopyDisclaimer,
		structure, requirements,
		req.Theme, req.Hook, req.Details, req.OfferPrice, req.OfferTerm)

	content, err := c.chat(ctx, system, user)
	if err != nil {
		return nil, err
	}

	content = cleanJSONResponse(content)

	var parsed struct {
		Items []DraftedVariant `json:"items"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse draft response: %w, content: %s", err, content)
	}

	return parsed.Items, nil
}

var intentScoreRe = regexp.MustCompile(`INTENT\s*_?\s*SCORE\s*:\s*([0-9]+(?:\.[0-9]+)?)`)

// splitReaction separates the qualitative feedback from the INTENT_SCORE line.
// A missing or unparseable score reads as 0.
func splitReaction(text string) (string, float64) {
	var intent float64
	if m := intentScoreRe.FindStringSubmatch(text); m != nil {
		fmt.Sscanf(m[1], "%f", &intent)
		if intent < 0 {
			intent = 0
		}
		if intent > 10 {
			intent = 10
		}
	}

	feedback := text
	if idx := strings.Index(text, "INTENT"); idx >= 0 {
		feedback = text[:idx]
	}
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		feedback = strings.TrimSpace(text)
	}
	return feedback, intent
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

func shapeBrief(b *BriefResult) {
	b.Summary = strings.TrimSpace(b.Summary)
	b.Notes = strings.TrimSpace(b.Notes)
	b.Drivers = trimList(b.Drivers)
	b.Risks = trimList(b.Risks)
	b.TalkingPoints = trimList(b.TalkingPoints)
	b.SEOKeywords = trimList(b.SEOKeywords)
	b.Hooks = trimList(b.Hooks)
	b.EmailSubjects = trimList(b.EmailSubjects)
	b.Headlines = trimList(b.Headlines)
	b.SocialCaptions = trimList(b.SocialCaptions)
	b.CTAAngles = trimList(b.CTAAngles)
	if b.Citations == nil {
		b.Citations = []Citation{}
	}
}

func trimList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
