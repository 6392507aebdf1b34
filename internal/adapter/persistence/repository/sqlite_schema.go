package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// sqliteSchema is applied in order; every statement is idempotent.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                TEXT PRIMARY KEY,
		full_name         TEXT NOT NULL,
		email             TEXT NOT NULL UNIQUE,
		role              TEXT NOT NULL,
		status            TEXT NOT NULL,
		is_email_verified INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL UNIQUE REFERENCES users(id),
		company_name    TEXT NOT NULL,
		industry        TEXT NOT NULL DEFAULT '',
		website_url     TEXT NOT NULL DEFAULT '',
		technical_vault TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS service_categories (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS service_requests (
		id          TEXT PRIMARY KEY,
		client_id   TEXT NOT NULL REFERENCES clients(id),
		category_id TEXT NOT NULL,
		details     TEXT NOT NULL,
		priority    TEXT NOT NULL,
		agent_id    TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_service_requests_client ON service_requests(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_service_requests_agent ON service_requests(agent_id)`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id           TEXT PRIMARY KEY,
		request_id   TEXT NOT NULL UNIQUE REFERENCES service_requests(id),
		agent_id     TEXT NOT NULL,
		total_amount REAL NOT NULL,
		status       TEXT NOT NULL,
		pdf_path     TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS proposal_line_items (
		id          TEXT PRIMARY KEY,
		proposal_id TEXT NOT NULL REFERENCES proposals(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		description TEXT NOT NULL,
		price       REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_proposal_line_items_proposal ON proposal_line_items(proposal_id)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id               TEXT PRIMARY KEY,
		request_id       TEXT NOT NULL UNIQUE REFERENCES service_requests(id),
		client_id        TEXT NOT NULL,
		agent_id         TEXT NOT NULL DEFAULT '',
		global_status    TEXT NOT NULL,
		progress_percent INTEGER NOT NULL DEFAULT 0,
		ecd              TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_client ON projects(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_agent ON projects(agent_id)`,
	`CREATE TABLE IF NOT EXISTS project_notes (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id),
		user_id    TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_project_notes_project ON project_notes(project_id)`,
	`CREATE TABLE IF NOT EXISTS project_assets (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id),
		file_path  TEXT NOT NULL,
		file_name  TEXT NOT NULL,
		type       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_project_assets_project ON project_assets(project_id)`,
}

// MigrateSQLite creates the schema inside one transaction.
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range sqliteSchema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	zap.L().Info("[database][sqlite] schema ready", zap.Int("statements", len(sqliteSchema)))
	return nil
}

// sqlQuerier is satisfied by *sql.DB and *sql.Tx.
type sqlQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ sqlQuerier = (*sql.DB)(nil)
	_ sqlQuerier = (*sql.Tx)(nil)
)

func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatDate(t), Valid: true}
}
