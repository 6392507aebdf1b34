package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"
)

const projectColumns = `id, request_id, client_id, agent_id, global_status, progress_percent, ecd, created_at, updated_at`

type ProjectSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IProjectRepository = (*ProjectSQLiteRepository)(nil)

func NewProjectSQLiteRepository(db *sql.DB) *ProjectSQLiteRepository {
	return &ProjectSQLiteRepository{db: db}
}

func (r *ProjectSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return r.getOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
}

func (r *ProjectSQLiteRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Project, error) {
	return r.getOne(ctx, `SELECT `+projectColumns+` FROM projects WHERE request_id = ?`, requestID)
}

func (r *ProjectSQLiteRepository) getOne(ctx context.Context, query, arg string) (entities.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Project{}, nil
	}
	return p, err
}

func (r *ProjectSQLiteRepository) List(ctx context.Context, f entities.ListFilter) ([]entities.Project, error) {
	if f.DenyAll {
		return []entities.Project{}, nil
	}
	where, args := ownerWhere(f, "global_status")
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects`+where+` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectSQLiteRepository) UpdateStatus(ctx context.Context, id string, u entities.ProjectStatusUpdate) (entities.Project, error) {
	sets := []string{"updated_at = ?"}
	args := []any{formatTime(time.Now())}
	if u.GlobalStatus != nil {
		sets = append(sets, "global_status = ?")
		args = append(args, string(*u.GlobalStatus))
	}
	if u.ProgressPercent != nil {
		sets = append(sets, "progress_percent = ?")
		args = append(args, *u.ProgressPercent)
	}
	if u.ECD != nil {
		sets = append(sets, "ecd = ?")
		args = append(args, nullDate(u.ECD))
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, `UPDATE projects SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return entities.Project{}, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return entities.Project{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ProjectSQLiteRepository) AddNote(ctx context.Context, n entities.ProjectNote) (entities.ProjectNote, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_notes (id, project_id, user_id, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.ProjectID, n.UserID, n.Content, formatTime(n.CreatedAt))
	if err != nil {
		return entities.ProjectNote{}, err
	}
	return n, nil
}

func (r *ProjectSQLiteRepository) ListNotes(ctx context.Context, projectID string) ([]entities.ProjectNote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, user_id, content, created_at FROM project_notes WHERE project_id = ? ORDER BY created_at, id`,
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ProjectNote{}
	for rows.Next() {
		var (
			n         entities.ProjectNote
			createdAt string
		)
		if err := rows.Scan(&n.ID, &n.ProjectID, &n.UserID, &n.Content, &createdAt); err != nil {
			return nil, err
		}
		n.CreatedAt = parseTime(createdAt)
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *ProjectSQLiteRepository) ListAssets(ctx context.Context, projectID string) ([]entities.ProjectAsset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, file_path, file_name, type, created_at FROM project_assets WHERE project_id = ? ORDER BY created_at, id`,
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ProjectAsset{}
	for rows.Next() {
		var (
			a         entities.ProjectAsset
			createdAt string
		)
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.FilePath, &a.FileName, &a.Type, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt = parseTime(createdAt)
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanProject(s rowScanner) (entities.Project, error) {
	var (
		p                    entities.Project
		status               string
		ecd                  sql.NullString
		createdAt, updatedAt string
	)
	if err := s.Scan(&p.ID, &p.RequestID, &p.ClientID, &p.AgentID, &status, &p.ProgressPercent, &ecd, &createdAt, &updatedAt); err != nil {
		return entities.Project{}, err
	}
	p.GlobalStatus = entities.ProjectStatus(status)
	if ecd.Valid {
		p.ECD = parseDate(ecd.String)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}
