// Package blogs provides storage for blog entries.
package blogs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements blog storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `SELECT id, title, author, url, likes, user_id, created_at FROM blogs`

// Create inserts blog, assigning a new id when it has none.
func (r *PostgresRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	if blog.ID == "" {
		blog.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO blogs (id, title, author, url, likes, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes, nullable(blog.UserID)).Scan(&blog.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return blog, nil
}

// List returns every blog in creation order.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Blog, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select blogs: %w", err)
	}
	defer rows.Close()

	result := []*models.Blog{}
	for rows.Next() {
		b, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	b, err := scan(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

// Update replaces title, author, url and likes. The owner is never touched.
func (r *PostgresRepository) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	query :=
		`UPDATE blogs SET title = $2, author = $3, url = $4, likes = $5
		 WHERE id = $1
		 RETURNING user_id, created_at`

	var owner sql.NullString
	err := r.db.QueryRowContext(ctx, query,
		blog.ID, blog.Title, blog.Author, blog.URL, blog.Likes).Scan(&owner, &blog.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	blog.UserID = owner.String

	return blog, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.Blog, error) {
	var (
		b     models.Blog
		owner sql.NullString
	)
	if err := s.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &owner, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.UserID = owner.String
	return &b, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
