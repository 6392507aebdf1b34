package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"
)

const proposalColumns = `id, request_id, agent_id, total_amount, status, pdf_path, created_at, updated_at`

type ProposalSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IProposalRepository = (*ProposalSQLiteRepository)(nil)

func NewProposalSQLiteRepository(db *sql.DB) *ProposalSQLiteRepository {
	return &ProposalSQLiteRepository{db: db}
}

func (r *ProposalSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	return r.getOne(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE id = ?`, id)
}

func (r *ProposalSQLiteRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Proposal, error) {
	return r.getOne(ctx, `SELECT `+proposalColumns+` FROM proposals WHERE request_id = ?`, requestID)
}

func (r *ProposalSQLiteRepository) getOne(ctx context.Context, query string, arg string) (entities.Proposal, error) {
	p, err := scanProposal(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Proposal{}, nil
	}
	return p, err
}

func (r *ProposalSQLiteRepository) ListLineItems(ctx context.Context, proposalID string) ([]entities.ProposalLineItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, proposal_id, position, description, price FROM proposal_line_items WHERE proposal_id = ? ORDER BY position`,
		proposalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ProposalLineItem{}
	for rows.Next() {
		var li entities.ProposalLineItem
		if err := rows.Scan(&li.ID, &li.ProposalID, &li.Position, &li.Description, &li.Price); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}

func (r *ProposalSQLiteRepository) UpdateDocument(ctx context.Context, id, pdfPath string) (entities.Proposal, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE proposals SET pdf_path = ?, updated_at = ? WHERE id = ? AND status = ?`,
		pdfPath, formatTime(time.Now()), id, string(entities.ProposalStatusDraft))
	if err != nil {
		return entities.Proposal{}, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return entities.Proposal{}, err
	}
	return r.GetByID(ctx, id)
}

func scanProposal(s rowScanner) (entities.Proposal, error) {
	var (
		p                    entities.Proposal
		status               string
		createdAt, updatedAt string
	)
	if err := s.Scan(&p.ID, &p.RequestID, &p.AgentID, &p.TotalAmount, &status, &p.PDFPath, &createdAt, &updatedAt); err != nil {
		return entities.Proposal{}, err
	}
	p.Status = entities.ProposalStatus(status)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}
