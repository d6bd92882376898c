package repository

import (
	"database/sql"
	"time"

	"github.com/MBurgo/super-tool/internal/model"
)

type SprintRepository struct {
	db *sql.DB
}

func NewSprintRepository(db *sql.DB) *SprintRepository {
	return &SprintRepository{db: db}
}

func (r *SprintRepository) SaveSprint(sprint *model.Sprint) error {
	return r.db.QueryRow(`
		INSERT INTO sprint(creative, segment, threshold, max_rounds, status)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, sprint.Creative, sprint.Segment, sprint.Threshold, sprint.MaxRounds, model.StatusPending).Scan(&sprint.ID, &sprint.CreatedAt)
}

func (r *SprintRepository) GetByID(id int64) (*model.Sprint, error) {
	var s model.Sprint
	err := r.db.QueryRow(`
		SELECT id, creative, segment, threshold, max_rounds, status, passed, final_copy, mean_intent, created_at, completed_at
		FROM sprint
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Creative, &s.Segment, &s.Threshold, &s.MaxRounds, &s.Status,
		&s.Passed, &s.FinalCopy, &s.MeanIntent, &s.CreatedAt, &s.CompletedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *SprintRepository) GetSprints(limit, offset int) ([]model.Sprint, error) {
	rows, err := r.db.Query(`
		SELECT id, creative, segment, threshold, max_rounds, status, passed, final_copy, mean_intent, created_at, completed_at
		FROM sprint
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sprints []model.Sprint
	for rows.Next() {
		var s model.Sprint
		err := rows.Scan(&s.ID, &s.Creative, &s.Segment, &s.Threshold, &s.MaxRounds, &s.Status,
			&s.Passed, &s.FinalCopy, &s.MeanIntent, &s.CreatedAt, &s.CompletedAt)
		if err != nil {
			return nil, err
		}
		sprints = append(sprints, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sprints, nil
}

func (r *SprintRepository) GetSprintTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sprint`).Scan(&total)
	return total, err
}

func (r *SprintRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE sprint SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

// SaveResult persists a finished sprint and its full round history in one
// transaction so a crashed worker never leaves a half-written result.
func (r *SprintRepository) SaveResult(sprint *model.Sprint, rounds []model.SprintRound, reactions map[int][]model.PersonaReaction, clusters map[int][]model.ClusterSummary) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	_, err = tx.Exec(`
		UPDATE sprint
		SET status = $1, passed = $2, final_copy = $3, mean_intent = $4, completed_at = $5
		WHERE id = $6
	`, model.StatusCompleted, sprint.Passed, sprint.FinalCopy, sprint.MeanIntent, now, sprint.ID)
	if err != nil {
		return err
	}
	sprint.Status = model.StatusCompleted
	sprint.CompletedAt = &now

	for i := range rounds {
		round := &rounds[i]
		round.SprintID = sprint.ID
		err = tx.QueryRow(`
			INSERT INTO sprint_round(sprint_id, round, creative, mean_intent)
			VALUES($1, $2, $3, $4)
			RETURNING id
		`, round.SprintID, round.Round, round.Creative, round.MeanIntent).Scan(&round.ID)
		if err != nil {
			return err
		}

		for _, reaction := range reactions[round.Round] {
			_, err = tx.Exec(`
				INSERT INTO persona_reaction(round_id, persona, feedback, intent, cluster)
				VALUES($1, $2, $3, $4, $5)
			`, round.ID, reaction.Persona, reaction.Feedback, reaction.Intent, reaction.Cluster)
			if err != nil {
				return err
			}
		}

		for _, cluster := range clusters[round.Round] {
			_, err = tx.Exec(`
				INSERT INTO cluster_summary(round_id, label, size, mean_intent, summary)
				VALUES($1, $2, $3, $4, $5)
			`, round.ID, cluster.Label, cluster.Size, cluster.MeanIntent, cluster.Summary)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (r *SprintRepository) GetRounds(sprintID int64) ([]model.SprintRound, error) {
	rows, err := r.db.Query(`
		SELECT id, sprint_id, round, creative, mean_intent, created_at
		FROM sprint_round
		WHERE sprint_id = $1
		ORDER BY round ASC
	`, sprintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []model.SprintRound
	for rows.Next() {
		var round model.SprintRound
		err := rows.Scan(&round.ID, &round.SprintID, &round.Round, &round.Creative, &round.MeanIntent, &round.CreatedAt)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rounds, nil
}

func (r *SprintRepository) GetReactions(roundID int64) ([]model.PersonaReaction, error) {
	rows, err := r.db.Query(`
		SELECT id, round_id, persona, feedback, intent, cluster
		FROM persona_reaction
		WHERE round_id = $1
		ORDER BY id ASC
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reactions []model.PersonaReaction
	for rows.Next() {
		var reaction model.PersonaReaction
		err := rows.Scan(&reaction.ID, &reaction.RoundID, &reaction.Persona, &reaction.Feedback, &reaction.Intent, &reaction.Cluster)
		if err != nil {
			return nil, err
		}
		reactions = append(reactions, reaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reactions, nil
}

func (r *SprintRepository) GetClusterSummaries(roundID int64) ([]model.ClusterSummary, error) {
	rows, err := r.db.Query(`
		SELECT id, round_id, label, size, mean_intent, summary
		FROM cluster_summary
		WHERE round_id = $1
		ORDER BY label ASC
	`, roundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.ClusterSummary
	for rows.Next() {
		var c model.ClusterSummary
		err := rows.Scan(&c.ID, &c.RoundID, &c.Label, &c.Size, &c.MeanIntent, &c.Summary)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *SprintRepository) SaveError(sprintID int64, errMsg string, errType string) error {
	_, err := r.db.Exec(`
		INSERT INTO processing_error(sprint_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, sprintID, errMsg, errType)

	return err
}

func (r *SprintRepository) GetErrorCount(id int64) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM processing_error
		WHERE sprint_id = $1
	`, id).Scan(&count)

	return count, err
}
