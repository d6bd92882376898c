package model

import "time"

// Theme is a campaign angle derived from clustering recent headlines.
type Theme struct {
	ID        int64
	Label     string
	Score     float64
	Reason    string
	Keywords  []string
	Articles  []ThemeArticle
	CreatedAt time.Time
}

type ThemeArticle struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
	Date   string `json:"date"`
}
