// Package services implements the blog list use cases on top of the
// repositories: registration and login, blog listing, creation, editing,
// ownership-guarded deletion and statistics.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/auth"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bloglist/internal/server/stats"
	"github.com/google/uuid"
)

// CreateResult reports both phases of a blog creation. Blog is always set
// on success; LinkErr is the outcome of appending the blog to the owner's
// list and does not undo the created blog.
type CreateResult struct {
	Blog    *models.Blog
	LinkErr error
}

type BlogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewBlogService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *BlogService {
	return &BlogService{
		db:          db,
		repomanager: m,
		logger:      logger,
	}
}

// List returns every blog with its owner expanded.
func (s *BlogService) List(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.repomanager.Blogs(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}

	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	owners := make(map[string]*models.User, len(users))
	for _, u := range users {
		owners[u.ID] = u
	}

	for _, b := range blogs {
		if u, ok := owners[b.UserID]; ok {
			b.User = u.Ref()
		}
	}

	return blogs, nil
}

// Create stores a blog owned by owner, then appends it to the owner's list.
// The second step is best effort: its failure is reported in LinkErr and
// logged, the blog stays.
func (s *BlogService) Create(ctx context.Context, fields models.BlogFields, owner *models.User) (*CreateResult, error) {
	if owner == nil || owner.ID == "" {
		return nil, common.ErrInvalidToken
	}
	if err := validate(fields); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		ID:     uuid.NewString(),
		Title:  fields.Title,
		Author: fields.Author,
		URL:    fields.URL,
		UserID: owner.ID,
	}
	if fields.Likes != nil {
		blog.Likes = *fields.Likes
	}

	blog, err := s.repomanager.Blogs(s.db).Create(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("error creating blog: %w", err)
	}
	blog.User = owner.Ref()

	result := &CreateResult{Blog: blog}

	if err := s.repomanager.Users(s.db).AppendBlog(ctx, owner.ID, blog.ID); err != nil {
		result.LinkErr = fmt.Errorf("error linking blog to user: %w", err)
		s.logger.Warn(ctx, "blog created but not linked to owner",
			"blog_id", blog.ID, "user_id", owner.ID, "error", err.Error())
	}

	return result, nil
}

// Update replaces title, author, url and likes of the blog. Likes keeps its
// stored value when not supplied. Anyone may edit; ownership is not checked.
func (s *BlogService) Update(ctx context.Context, id string, fields models.BlogFields) (*models.Blog, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := validate(fields); err != nil {
		return nil, err
	}

	var updated *models.Blog

	err := s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Blogs(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		current.Title = fields.Title
		current.Author = fields.Author
		current.URL = fields.URL
		if fields.Likes != nil {
			current.Likes = *fields.Likes
		}

		updated, err = repo.Update(ctx, current)
		if err != nil {
			return err
		}

		if updated.UserID == "" {
			return nil
		}
		owner, err := s.repomanager.Users(tx).GetByID(ctx, updated.UserID)
		switch {
		case err == nil:
			updated.User = owner.Ref()
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error updating blog: %w", err)
	}

	return updated, nil
}

// Delete removes the blog if user owns it. The id stays in the owner's list.
func (s *BlogService) Delete(ctx context.Context, id string, user *models.User) error {
	if err := checkID(id); err != nil {
		return err
	}

	repo := s.repomanager.Blogs(s.db)

	blog, err := repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error searching blog: %w", err)
	}

	if err := auth.AuthorizeDelete(blog, user); err != nil {
		return err
	}

	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting blog: %w", err)
	}

	return nil
}

// Stats computes the aggregates over a snapshot of all blogs.
func (s *BlogService) Stats(ctx context.Context) (*models.BlogStats, error) {
	blogs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Compute(blogs), nil
}

func validate(f models.BlogFields) error {
	switch {
	case f.Title == "":
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	case f.URL == "":
		return fmt.Errorf("%w: url is required", common.ErrValidation)
	case f.Likes != nil && *f.Likes < 0:
		return fmt.Errorf("%w: likes must not be negative", common.ErrValidation)
	}
	return nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrMalformedID
	}
	return nil
}
