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

const serviceRequestColumns = `id, client_id, category_id, details, priority, agent_id, status, created_at, updated_at`

// ServiceRequestSQLiteRepository persists ServiceRequest entities in SQLite.
type ServiceRequestSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestSQLiteRepository)(nil)

func NewServiceRequestSQLiteRepository(db *sql.DB) *ServiceRequestSQLiteRepository {
	return &ServiceRequestSQLiteRepository{db: db}
}

func (r *ServiceRequestSQLiteRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO service_requests (`+serviceRequestColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sr.ID, sr.ClientID, sr.CategoryID, sr.Details, string(sr.Priority), sr.AgentID, string(sr.Status),
		formatTime(sr.CreatedAt), formatTime(sr.UpdatedAt),
	)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestSQLiteRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+serviceRequestColumns+` FROM service_requests WHERE id = ?`, id)
	sr, err := scanServiceRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ServiceRequest{}, nil
	}
	return sr, err
}

func (r *ServiceRequestSQLiteRepository) List(ctx context.Context, f entities.ListFilter) ([]entities.ServiceRequest, error) {
	if f.DenyAll {
		return []entities.ServiceRequest{}, nil
	}
	where, args := ownerWhere(f, "status")
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+serviceRequestColumns+` FROM service_requests`+where+` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ServiceRequest{}
	for rows.Next() {
		sr, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *ServiceRequestSQLiteRepository) AssignAgent(ctx context.Context, id, agentID string, status, expected entities.RequestStatus) (entities.ServiceRequest, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE service_requests SET agent_id = ?, status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		agentID, string(status), formatTime(time.Now()), id, string(expected),
	)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return entities.ServiceRequest{}, err
	} else if n == 0 {
		return entities.ServiceRequest{}, interfaces.ErrConditionFailed
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanServiceRequest(s rowScanner) (entities.ServiceRequest, error) {
	var (
		sr                   entities.ServiceRequest
		priority, status     string
		createdAt, updatedAt string
	)
	if err := s.Scan(&sr.ID, &sr.ClientID, &sr.CategoryID, &sr.Details, &priority, &sr.AgentID, &status, &createdAt, &updatedAt); err != nil {
		return entities.ServiceRequest{}, err
	}
	sr.Priority = entities.RequestPriority(priority)
	sr.Status = entities.RequestStatus(status)
	sr.CreatedAt = parseTime(createdAt)
	sr.UpdatedAt = parseTime(updatedAt)
	return sr, nil
}

// ownerWhere renders the WHERE clause of a scoped listing.
func ownerWhere(f entities.ListFilter, statusColumn string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.ClientID != "" {
		conds = append(conds, "client_id = ?")
		args = append(args, f.ClientID)
	}
	if f.AgentID != "" {
		conds = append(conds, "agent_id = ?")
		args = append(args, f.AgentID)
	}
	if f.Status != "" {
		conds = append(conds, statusColumn+" = ?")
		args = append(args, f.Status)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// placeholders returns "?, ?, ..." for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}
