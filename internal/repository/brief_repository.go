package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/MBurgo/super-tool/internal/model"
)

type BriefRepository struct {
	db *sql.DB
}

func NewBriefRepository(db *sql.DB) *BriefRepository {
	return &BriefRepository{db: db}
}

func (r *BriefRepository) SaveBrief(brief *model.CampaignBrief) error {
	sections, err := json.Marshal(briefSections{
		Drivers:        brief.Drivers,
		Risks:          brief.Risks,
		TalkingPoints:  brief.TalkingPoints,
		SEOKeywords:    brief.SEOKeywords,
		Hooks:          brief.Hooks,
		EmailSubjects:  brief.EmailSubjects,
		Headlines:      brief.Headlines,
		SocialCaptions: brief.SocialCaptions,
		CTAAngles:      brief.CTAAngles,
	})
	if err != nil {
		return err
	}

	citations, err := json.Marshal(brief.Citations)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO campaign_brief(topic, summary, sections, notes, citations, model_used)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, brief.Topic, brief.Summary, sections, brief.Notes, citations, brief.ModelUsed).Scan(&brief.ID, &brief.CreatedAt)
}

func (r *BriefRepository) GetBriefs(limit, offset int) ([]model.CampaignBrief, error) {
	rows, err := r.db.Query(`
		SELECT id, topic, summary, sections, notes, citations, model_used, created_at
		FROM campaign_brief
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var briefs []model.CampaignBrief
	for rows.Next() {
		var b model.CampaignBrief
		var sectionsJSON, citationsJSON []byte
		err := rows.Scan(&b.ID, &b.Topic, &b.Summary, &sectionsJSON, &b.Notes, &citationsJSON, &b.ModelUsed, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := unpackBrief(&b, sectionsJSON, citationsJSON); err != nil {
			return nil, err
		}
		briefs = append(briefs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return briefs, nil
}

func (r *BriefRepository) GetBriefByID(id int64) (*model.CampaignBrief, error) {
	var b model.CampaignBrief
	var sectionsJSON, citationsJSON []byte
	err := r.db.QueryRow(`
		SELECT id, topic, summary, sections, notes, citations, model_used, created_at
		FROM campaign_brief
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Topic, &b.Summary, &sectionsJSON, &b.Notes, &citationsJSON, &b.ModelUsed, &b.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if err := unpackBrief(&b, sectionsJSON, citationsJSON); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BriefRepository) GetBriefTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM campaign_brief`).Scan(&total)
	return total, err
}

type briefSections struct {
	Drivers        []string `json:"drivers"`
	Risks          []string `json:"risks"`
	TalkingPoints  []string `json:"talking_points"`
	SEOKeywords    []string `json:"seo_keywords"`
	Hooks          []string `json:"hooks"`
	EmailSubjects  []string `json:"email_subjects"`
	Headlines      []string `json:"headlines"`
	SocialCaptions []string `json:"social_captions"`
	CTAAngles      []string `json:"cta_angles"`
}

func unpackBrief(b *model.CampaignBrief, sectionsJSON, citationsJSON []byte) error {
	var sections briefSections
	if err := json.Unmarshal(sectionsJSON, &sections); err != nil {
		return err
	}
	b.Drivers = sections.Drivers
	b.Risks = sections.Risks
	b.TalkingPoints = sections.TalkingPoints
	b.SEOKeywords = sections.SEOKeywords
	b.Hooks = sections.Hooks
	b.EmailSubjects = sections.EmailSubjects
	b.Headlines = sections.Headlines
	b.SocialCaptions = sections.SocialCaptions
	b.CTAAngles = sections.CTAAngles

	return json.Unmarshal(citationsJSON, &b.Citations)
}
