package llm

const reactionSystemPrompt = `You are simulating an Australian retail investor responding candidly. Do not reward hype or guaranteed-return claims.`

const reactionTemplate = `You are %s, a %d-year-old %s from %s.
Below is marketing copy. Give your honest reaction in 2 short paragraphs, then on a new line:
INTENT_SCORE: <0-10>

COPY:
---------
%s
---------
`

const clusterSummarySystemPrompt = `Be concise, neutral, specific.`

const clusterSummaryPrompt = `Summarise the common theme in one crisp sentence:

`

const reviseSystemPrompt = `You are a senior direct-response copywriter for a regulated financial publisher in Australia.
Revise the marketing copy you are given so it addresses the focus-group criticism, while keeping the
offer, the call to action, and the compliance disclaimer intact. Do not add promissory language.
Return only the revised copy, no commentary.`

const reviseTemplate = `Focus-group criticism of the current copy:
%s

CURRENT COPY:
---------
%s
---------

Rewrite the copy to address the criticism.`

const themeClusterPrompt = `You are a financial analyst for Australia. You will receive a list of finance news headlines with metadata (index, title, snippet, source, date).

Cluster the headlines by their PRIMARY SUBJECT — the company, event, or topic they are fundamentally about — not by headline wording. Rank the clusters by article count, then by publisher diversity.

For each cluster produce a crisp campaign theme.

Return the top 10 clusters as JSON. If fewer than 10 distinct clusters exist, return all of them.

Output JSON only, no other text:
{
  "themes": [
    {
      "label": "campaign theme label, <= 60 chars",
      "reason": "analyst-style explanation, <= 180 chars",
      "keywords": ["3-6 short phrases"],
      "article_indices": [0, 3, 7]
    }
  ]
}`

const briefSystemTemplate = `You are a senior financial editor in %s building a campaign brief for a regulated publisher.
Output STRICT JSON only, matching this top-level schema:
%s
- Audience: retail investors, low-to-mid experience.
- Tone: clear, measured, opportunity-focused but compliant.
- Do not promise results. Avoid superlatives. Mention risks.
- Tailor "cta_angles" to the product "%s".`

const briefSchemaExample = `{
  "summary": "one-paragraph market summary for AU retail investors",
  "drivers": ["bullet", "bullet", "bullet"],
  "risks": ["bullet", "bullet"],
  "talking_points": ["bullet", "bullet", "bullet"],
  "seo_keywords": ["asx 200", "dividend shares", "rba rates"],
  "hooks": ["short hook", "contrarian hook", "FOMO hook"],
  "email_subjects": ["subject A", "subject B", "subject C"],
  "headlines": ["headline A", "headline B", "headline C"],
  "social_captions": ["caption A", "caption B"],
  "cta_angles": ["angle A", "angle B"],
  "notes": "compliance reminders, sensitivities, disclaimers if needed",
  "citations": [
    {"title": "ASX rises to record", "publisher": "AFR", "date": "2025-10-06", "url": "https://..."}
  ]
}`

const briefUserTemplate = `Topic: %s

Source headlines (title — publisher — date, then snippet and URL):
%s

Tasks:
1) Write the one-paragraph "summary".
2) List 3-6 "drivers" (forces behind the theme) and 2-4 "risks".
3) Give 4-8 "talking_points" an editor can expand into paragraphs.
4) Provide 8-14 "seo_keywords" (a mix of head and long-tail).
5) Suggest 3-6 "hooks" (punchy angles), 3-7 "email_subjects", 3-7 "headlines", and 2-4 "social_captions".
6) Provide 2-4 "cta_angles" aligned to "%s" offers.
7) Add any "notes" a compliance-minded editor should keep in mind.
8) Build "citations" from the sources you used (title, publisher, date, url).`

const draftSystemTemplate = `You are a senior direct-response copywriter for a regulated financial publisher in Australia.
Write persuasive, compliant copy for retail investors. Always include the exact disclaimer at the end:
%s

Output MUST be valid JSON in this schema:
{
  "items": [{"copy": "string", "plan": "string"}]
}

Constraints:
- Maintain an informative, trustworthy tone suitable for Australian investors.
- Do not claim certainty. Avoid promissory language.
- Include a clear CTA for a low-cost, entry-level newsletter subscription.
- Honour the requested structure if provided.`

const draftUserTemplate = `Generate %d alternative %s variants for the following campaign brief.
Each variant must be between %d and %d words and end with the exact disclaimer line:
%s

## Structure to Follow
%s

## Hard Requirements
%s

## Campaign Brief
- Theme: %s
- Hook: %s
- Details: %s
- Offer: %s for %s`
