package repository

import (
	"context"
	"database/sql"
	"errors"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"
)

type CategorySQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ICategoryRepository = (*CategorySQLiteRepository)(nil)

func NewCategorySQLiteRepository(db *sql.DB) *CategorySQLiteRepository {
	return &CategorySQLiteRepository{db: db}
}

func (r *CategorySQLiteRepository) Create(ctx context.Context, c entities.ServiceCategory) (entities.ServiceCategory, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO service_categories (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, formatTime(c.CreatedAt))
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	return c, nil
}

func (r *CategorySQLiteRepository) GetByID(ctx context.Context, id string) (entities.ServiceCategory, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at FROM service_categories WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ServiceCategory{}, nil
	}
	return c, err
}

func (r *CategorySQLiteRepository) List(ctx context.Context) ([]entities.ServiceCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, created_at FROM service_categories ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.ServiceCategory{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCategory(s rowScanner) (entities.ServiceCategory, error) {
	var it categoryItem
	if err := s.Scan(&it.ID, &it.Name, &it.Description, &it.CreatedAt); err != nil {
		return entities.ServiceCategory{}, err
	}
	return fromCategoryItem(it), nil
}
