package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triviahub/question-bank/internal/question"
)

// CategoryRepository is the Postgres-backed category store. Categories are
// seeded by migration and only ever read here.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]question.Category, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT category_id, label FROM categories ORDER BY category_id")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []question.Category
	for rows.Next() {
		var c question.Category
		if err := rows.Scan(&c.ID, &c.Label); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}
