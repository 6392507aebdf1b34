package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteTransactor runs lifecycle writes in one SQLite transaction. The pool
// holds a single connection, so transactions are serialized in-process.
type SQLiteTransactor struct {
	db *sql.DB
}

var (
	_ interfaces.ITransactor    = (*SQLiteTransactor)(nil)
	_ interfaces.IHealthChecker = (*SQLiteTransactor)(nil)
)

func NewSQLiteTransactor(db *sql.DB) *SQLiteTransactor {
	return &SQLiteTransactor{db: db}
}

func (t *SQLiteTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.ILifecycleTx) error) error {
	// The transaction outlives ctx so that a cancellation arriving after the
	// final check cannot roll back a commit in progress.
	sqlTx, err := t.db.BeginTx(context.WithoutCancel(ctx), nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = sqlTx.Rollback()
		}
	}()

	if err := fn(ctx, &sqliteLifecycleTx{tx: sqlTx, now: time.Now().UTC()}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		zap.L().Error("[lifecycle][repository] sqlite commit failed", zap.Error(err))
		return mapSQLiteError(err)
	}
	committed = true
	return nil
}

func (t *SQLiteTransactor) Ping(ctx context.Context) error {
	return t.db.PingContext(ctx)
}

// mapSQLiteError turns uniqueness violations into ErrConditionFailed.
func mapSQLiteError(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return interfaces.ErrConditionFailed
		}
	}
	return err
}

type sqliteLifecycleTx struct {
	tx  *sql.Tx
	now time.Time
}

var _ interfaces.ILifecycleTx = (*sqliteLifecycleTx)(nil)

// GuardRequestStatus touches the request row so the transaction holds the
// write lock from here on.
func (s *sqliteLifecycleTx) GuardRequestStatus(ctx context.Context, requestID string, allowed []entities.RequestStatus) error {
	return s.conditionalUpdate(ctx,
		`UPDATE service_requests SET updated_at = ? WHERE id = ? AND status IN (`+placeholders(len(allowed))+`)`,
		append([]any{formatTime(s.now), requestID}, anySlice(statusStrings(allowed))...)...)
}

func (s *sqliteLifecycleTx) DeleteProposalsByRequestID(ctx context.Context, requestID string) error {
	_, err := s.tx.ExecContext(ctx, `DELETE FROM proposals WHERE request_id = ?`, requestID)
	return err
}

func (s *sqliteLifecycleTx) CreateProposal(ctx context.Context, p entities.Proposal) error {
	_, err := s.tx.ExecContext(ctx,
		`INSERT INTO proposals (`+proposalColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.RequestID, p.AgentID, p.TotalAmount, string(p.Status), p.PDFPath,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	return mapSQLiteError(err)
}

func (s *sqliteLifecycleTx) CreateLineItems(ctx context.Context, items []entities.ProposalLineItem) error {
	stmt, err := s.tx.PrepareContext(ctx,
		`INSERT INTO proposal_line_items (id, proposal_id, position, description, price) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, li := range items {
		if _, err := stmt.ExecContext(ctx, li.ID, li.ProposalID, li.Position, li.Description, li.Price); err != nil {
			return mapSQLiteError(err)
		}
	}
	return nil
}

func (s *sqliteLifecycleTx) TransitionProposal(ctx context.Context, id string, to entities.ProposalStatus, from []entities.ProposalStatus) error {
	args := []any{string(to), formatTime(s.now), id}
	for _, f := range from {
		args = append(args, string(f))
	}
	return s.conditionalUpdate(ctx,
		`UPDATE proposals SET status = ?, updated_at = ? WHERE id = ? AND status IN (`+placeholders(len(from))+`)`,
		args...)
}

func (s *sqliteLifecycleTx) TransitionRequest(ctx context.Context, id string, to entities.RequestStatus, from []entities.RequestStatus) error {
	return s.conditionalUpdate(ctx,
		`UPDATE service_requests SET status = ?, updated_at = ? WHERE id = ? AND status IN (`+placeholders(len(from))+`)`,
		append([]any{string(to), formatTime(s.now), id}, anySlice(statusStrings(from))...)...)
}

func (s *sqliteLifecycleTx) CreateProject(ctx context.Context, p entities.Project) error {
	_, err := s.tx.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.RequestID, p.ClientID, p.AgentID, string(p.GlobalStatus), p.ProgressPercent,
		nullDate(p.ECD), formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	return mapSQLiteError(err)
}

func (s *sqliteLifecycleTx) conditionalUpdate(ctx context.Context, query string, args ...any) error {
	res, err := s.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return interfaces.ErrConditionFailed
	}
	return nil
}

func anySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
