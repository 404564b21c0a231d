// Package users provides storage for registered users and the ordered list of
// blogs each of them created.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts user, assigning a new id when it has none. A taken username
// yields common.ErrDuplicateUsername.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO users (id, username, name, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Name, user.PasswordHash).Scan(&user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT id, username, name, password_hash, created_at FROM users
		 WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, name, password_hash, created_at FROM users
		 WHERE username = $1`

	return r.getOne(ctx, query, username)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	ids, err := r.blogIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.BlogIDs = ids

	return user, nil
}

func (r *PostgresRepository) blogIDs(ctx context.Context, userID string) ([]string, error) {
	query :=
		`SELECT blog_id FROM user_blogs
		 WHERE user_id = $1
		 ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// List returns all users in registration order, each with its blog ids.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT id, username, name, password_hash, created_at FROM users
		 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.User{}
	byID := make(map[string]*models.User)
	for rows.Next() {
		u := &models.User{BlogIDs: []string{}}
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
		byID[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	links, err := r.db.QueryContext(ctx, `SELECT user_id, blog_id FROM user_blogs ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer links.Close()

	for links.Next() {
		var userID, blogID string
		if err := links.Scan(&userID, &blogID); err != nil {
			return nil, err
		}
		if u, ok := byID[userID]; ok {
			u.BlogIDs = append(u.BlogIDs, blogID)
		}
	}
	if err := links.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// AppendBlog records that userID created blogID.
func (r *PostgresRepository) AppendBlog(ctx context.Context, userID, blogID string) error {
	query :=
		`INSERT INTO user_blogs (user_id, blog_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, blog_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, userID, blogID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
