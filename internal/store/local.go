// Package store implements the local plan store, the durability
// boundary for all plan writes.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/util"
	"ddplanner_backend/pkg/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// activityLogCap bounds the per-user activity history.
const activityLogCap = 50

type LocalStore struct {
	db *sqlx.DB
}

func NewLocalStore(db *sqlx.DB) *LocalStore {
	return &LocalStore{db: db}
}

type planRow struct {
	ID        string `db:"id"`
	UserID    uint   `db:"user_id"`
	Title     string `db:"title"`
	Concurso  string `db:"concurso"`
	Cargo     string `db:"cargo"`
	TotalDays int    `db:"total_days"`
	Payload   string `db:"payload"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type activityRow struct {
	ID        int64  `db:"id"`
	UserID    uint   `db:"user_id"`
	Action    string `db:"action"`
	PlanID    string `db:"plan_id"`
	PlanTitle string `db:"plan_title"`
	Detail    string `db:"detail"`
	CreatedAt string `db:"created_at"`
}

// SavePlan inserts or replaces a plan document.
func (s *LocalStore) SavePlan(userID uint, plan *model.StoredStudyPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan %s: %w", plan.ID, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO study_plans (id, user_id, title, concurso, cargo, total_days, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			concurso = excluded.concurso,
			cargo = excluded.cargo,
			total_days = excluded.total_days,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		plan.ID, userID, plan.Title, plan.Concurso, plan.Cargo, plan.TotalDays,
		string(payload),
		plan.CreatedAt.UTC().Format(time.RFC3339Nano),
		plan.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// GetPlans returns the user's plans, newest first.
func (s *LocalStore) GetPlans(userID uint) ([]model.StoredStudyPlan, error) {
	var rows []planRow
	err := s.db.Select(&rows, `
		SELECT id, user_id, title, concurso, cargo, total_days, payload, created_at, updated_at
		FROM study_plans WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}

	plans := make([]model.StoredStudyPlan, 0, len(rows))
	for _, row := range rows {
		var plan model.StoredStudyPlan
		if err := json.Unmarshal([]byte(row.Payload), &plan); err != nil {
			logger.Log.Warn("skipping undecodable plan row",
				zap.String("plan_id", row.ID),
				zap.Uint("user_id", row.UserID),
				zap.Error(err))
			continue
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// GetPlan loads one plan by id, scoped to the user.
func (s *LocalStore) GetPlan(userID uint, planID string) (*model.StoredStudyPlan, error) {
	var row planRow
	err := s.db.Get(&row, `
		SELECT id, user_id, title, concurso, cargo, total_days, payload, created_at, updated_at
		FROM study_plans WHERE user_id = ? AND id = ?`, userID, planID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, util.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	var plan model.StoredStudyPlan
	if err := json.Unmarshal([]byte(row.Payload), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", planID, err)
	}
	return &plan, nil
}

// DeletePlan removes the plan locally. The remote mirror keeps its
// copy; only the local store honors deletions.
func (s *LocalStore) DeletePlan(userID uint, planID string) error {
	res, err := s.db.Exec(`DELETE FROM study_plans WHERE user_id = ? AND id = ?`, userID, planID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrPlanNotFound
	}
	return nil
}

// ReplaceAll swaps the user's entire local plan set for the given
// one, in a single transaction. Used when a remote read supersedes
// the local state.
func (s *LocalStore) ReplaceAll(userID uint, plans []model.StoredStudyPlan) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM study_plans WHERE user_id = ?`, userID); err != nil {
		return err
	}

	for i := range plans {
		plan := &plans[i]
		payload, err := json.Marshal(plan)
		if err != nil {
			return fmt.Errorf("failed to encode plan %s: %w", plan.ID, err)
		}
		if _, err := tx.Exec(`
			INSERT INTO study_plans (id, user_id, title, concurso, cargo, total_days, payload, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			plan.ID, userID, plan.Title, plan.Concurso, plan.Cargo, plan.TotalDays,
			string(payload),
			plan.CreatedAt.UTC().Format(time.RFC3339Nano),
			plan.UpdatedAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Users lists every user id with at least one local plan.
func (s *LocalStore) Users() ([]uint, error) {
	var ids []uint
	err := s.db.Select(&ids, `SELECT DISTINCT user_id FROM study_plans ORDER BY user_id`)
	return ids, err
}

// LogActivity appends an entry and trims the history to the cap.
func (s *LocalStore) LogActivity(userID uint, action, planID, planTitle, detail string) error {
	_, err := s.db.Exec(`
		INSERT INTO activity_log (user_id, action, plan_id, plan_title, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		userID, action, planID, planTitle, detail,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		DELETE FROM activity_log
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM activity_log WHERE user_id = ? ORDER BY id DESC LIMIT ?
		)`, userID, userID, activityLogCap)
	return err
}

// RecentActivity returns the newest entries, most recent first.
func (s *LocalStore) RecentActivity(userID uint, limit int) ([]model.ActivityLogEntry, error) {
	var rows []activityRow
	err := s.db.Select(&rows, `
		SELECT id, user_id, action, plan_id, plan_title, detail, created_at
		FROM activity_log WHERE user_id = ? ORDER BY id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ActivityLogEntry, 0, len(rows))
	for _, row := range rows {
		createdAt, _ := time.Parse(time.RFC3339Nano, row.CreatedAt)
		entries = append(entries, model.ActivityLogEntry{
			ID:        row.ID,
			Action:    row.Action,
			PlanID:    row.PlanID,
			PlanTitle: row.PlanTitle,
			Detail:    row.Detail,
			CreatedAt: createdAt,
		})
	}
	return entries, nil
}

// IntegrityCheck scans the user's rows and drops any plan whose
// payload no longer decodes. Returns the number of removed rows.
func (s *LocalStore) IntegrityCheck(userID uint) (int, error) {
	var rows []planRow
	err := s.db.Select(&rows, `SELECT id, user_id, payload FROM study_plans WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, row := range rows {
		var plan model.StoredStudyPlan
		if json.Unmarshal([]byte(row.Payload), &plan) == nil && plan.ID == row.ID {
			continue
		}
		if _, err := s.db.Exec(`DELETE FROM study_plans WHERE user_id = ? AND id = ?`, userID, row.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
