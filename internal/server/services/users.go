package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/auth"
	"github.com/dmitrijs2005/bloglist/internal/server/config"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token string
	User  *models.User
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *auth.Codec
	hashCost    int
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, codec *auth.Codec, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		codec:       codec,
		hashCost:    cfg.PasswordHashCost,
	}
}

// Register creates a user with a bcrypt hash of password.
func (s *UserService) Register(ctx context.Context, username, name, password string) (*models.User, error) {
	if utf8.RuneCountInString(username) < common.MinCredentialLength {
		return nil, fmt.Errorf("%w: username must be at least %d characters long", common.ErrValidation, common.MinCredentialLength)
	}
	if utf8.RuneCountInString(password) < common.MinCredentialLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", common.ErrValidation, common.MinCredentialLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// List returns every user with the owned blogs expanded. Ids of blogs that
// no longer exist are skipped.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	blogs, err := s.repomanager.Blogs(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}

	byID := make(map[string]*models.Blog, len(blogs))
	for _, b := range blogs {
		byID[b.ID] = b
	}

	for _, u := range users {
		u.Blogs = make([]*models.Blog, 0, len(u.BlogIDs))
		for _, id := range u.BlogIDs {
			if b, ok := byID[id]; ok {
				u.Blogs = append(u.Blogs, b)
			}
		}
	}

	return users, nil
}

// Login checks the password and issues a bearer token for the user.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Resolve looks the principal up on every call; nothing is cached.
func (s *UserService) Resolve(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}
