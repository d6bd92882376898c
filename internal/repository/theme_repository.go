package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"github.com/MBurgo/super-tool/internal/model"
)

type ThemeRepository struct {
	db *sql.DB
}

func NewThemeRepository(db *sql.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// SaveThemes stores one discovery run in a single transaction. NOW() is the
// transaction start time, so every theme in the run shares a created_at and
// GetLatestThemes ranks the run by score.
func (r *ThemeRepository) SaveThemes(themes []model.Theme) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range themes {
		theme := &themes[i]

		articles, err := json.Marshal(theme.Articles)
		if err != nil {
			return err
		}

		err = tx.QueryRow(`
			INSERT INTO theme(label, score, reason, keywords, articles)
			VALUES($1, $2, $3, $4, $5)
			RETURNING id, created_at
		`, theme.Label, theme.Score, theme.Reason, pq.Array(theme.Keywords), articles).Scan(&theme.ID, &theme.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ThemeRepository) GetLatestThemes(limit int) ([]model.Theme, error) {
	rows, err := r.db.Query(`
		SELECT id, label, score, reason, keywords, articles, created_at
		FROM theme
		ORDER BY created_at DESC, score DESC, label ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []model.Theme
	for rows.Next() {
		var t model.Theme
		var articlesJSON []byte
		err := rows.Scan(&t.ID, &t.Label, &t.Score, &t.Reason, pq.Array(&t.Keywords), &articlesJSON, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(articlesJSON, &t.Articles); err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return themes, nil
}
