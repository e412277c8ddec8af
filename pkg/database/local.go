package database

import (
	"fmt"
	"os"
	"path/filepath"

	"ddplanner_backend/pkg/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const localSchema = `
CREATE TABLE IF NOT EXISTS study_plans (
	id TEXT PRIMARY KEY,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	concurso TEXT NOT NULL,
	cargo TEXT NOT NULL,
	total_days INTEGER NOT NULL,
	payload TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_study_plans_user ON study_plans(user_id);

CREATE TABLE IF NOT EXISTS activity_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	action TEXT NOT NULL,
	plan_id TEXT NOT NULL,
	plan_title TEXT NOT NULL,
	detail TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_activity_log_user ON activity_log(user_id, id);
`

// InitLocalDB opens the embedded SQLite database that backs the local
// plan store and bootstraps its schema. SQLite handles one writer at a
// time, so the pool is limited to a single connection.
func InitLocalDB(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create local db directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(localSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap local schema: %w", err)
	}

	logger.Log.Info("local database ready", zap.String("path", path))

	return db, nil
}
