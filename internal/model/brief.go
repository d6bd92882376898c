package model

import "time"

type CampaignBrief struct {
	ID             int64
	Topic          string
	Summary        string
	Drivers        []string
	Risks          []string
	TalkingPoints  []string
	SEOKeywords    []string
	Hooks          []string
	EmailSubjects  []string
	Headlines      []string
	SocialCaptions []string
	CTAAngles      []string
	Notes          string
	Citations      []Citation
	ModelUsed      string
	CreatedAt      time.Time
}

type Citation struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`
	URL       string `json:"url"`
}
