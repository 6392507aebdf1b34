package repository

import (
	"context"
	"database/sql"
	"errors"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"
)

const (
	userColumns   = `id, full_name, email, role, status, is_email_verified, created_at`
	clientColumns = `id, user_id, company_name, industry, website_url, technical_vault, created_at`
)

type AccountSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IAccountRepository = (*AccountSQLiteRepository)(nil)

func NewAccountSQLiteRepository(db *sql.DB) *AccountSQLiteRepository {
	return &AccountSQLiteRepository{db: db}
}

func (r *AccountSQLiteRepository) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FullName, u.Email, string(u.Role), string(u.Status), u.IsEmailVerified, formatTime(u.CreatedAt))
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *AccountSQLiteRepository) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, nil
	}
	return u, err
}

func (r *AccountSQLiteRepository) ListUsersByStatus(ctx context.Context, status entities.UserStatus) ([]entities.User, error) {
	values := []any{string(status)}
	if status == entities.UserStatusPendingApproval {
		values = append(values, legacyPendingStatus)
	}
	return r.listUsers(ctx, `WHERE status IN (`+placeholders(len(values))+`)`, values...)
}

func (r *AccountSQLiteRepository) ListUsersByRole(ctx context.Context, role entities.Role) ([]entities.User, error) {
	return r.listUsers(ctx, `WHERE role = ?`, string(role))
}

func (r *AccountSQLiteRepository) listUsers(ctx context.Context, where string, args ...any) ([]entities.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users `+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *AccountSQLiteRepository) UpdateUserStatus(ctx context.Context, id string, status entities.UserStatus) (entities.User, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return entities.User{}, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return entities.User{}, err
	}
	return r.GetUserByID(ctx, id)
}

func (r *AccountSQLiteRepository) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (`+clientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.CompanyName, c.Industry, c.WebsiteURL, c.TechnicalVault, formatTime(c.CreatedAt))
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *AccountSQLiteRepository) GetClientByID(ctx context.Context, id string) (entities.Client, error) {
	return r.getClient(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
}

func (r *AccountSQLiteRepository) GetClientByUserID(ctx context.Context, userID string) (entities.Client, error) {
	return r.getClient(ctx, `SELECT `+clientColumns+` FROM clients WHERE user_id = ?`, userID)
}

func (r *AccountSQLiteRepository) getClient(ctx context.Context, query, arg string) (entities.Client, error) {
	var (
		c         entities.Client
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&c.ID, &c.UserID, &c.CompanyName, &c.Industry, &c.WebsiteURL, &c.TechnicalVault, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	c.CreatedAt = parseTime(createdAt)
	return c, nil
}

func (r *AccountSQLiteRepository) UpdateClientProfile(ctx context.Context, id string, u entities.ClientProfileUpdate) (entities.Client, error) {
	query := `UPDATE clients SET industry = ?, website_url = ?`
	args := []any{u.Industry, u.WebsiteURL}
	if u.TechnicalVault != nil {
		query += `, technical_vault = ?`
		args = append(args, *u.TechnicalVault)
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query+` WHERE id = ?`, args...)
	if err != nil {
		return entities.Client{}, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return entities.Client{}, err
	}
	return r.GetClientByID(ctx, id)
}

func scanUser(s rowScanner) (entities.User, error) {
	var (
		it       userItem
		verified bool
	)
	if err := s.Scan(&it.ID, &it.FullName, &it.Email, &it.Role, &it.Status, &verified, &it.CreatedAt); err != nil {
		return entities.User{}, err
	}
	it.IsEmailVerified = verified
	return fromUserItem(it), nil
}
