package users

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory, in registration order.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, common.ErrDuplicateUsername
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()

	stored := clone(user)
	if stored.BlogIDs == nil {
		stored.BlogIDs = []string{}
	}
	r.users = append(r.users, stored)

	return clone(stored), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *MemoryRepository) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return clone(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, clone(u))
	}
	return result, nil
}

func (r *MemoryRepository) AppendBlog(ctx context.Context, userID, blogID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID != userID {
			continue
		}
		if !slices.Contains(u.BlogIDs, blogID) {
			u.BlogIDs = append(u.BlogIDs, blogID)
		}
		return nil
	}
	return common.ErrorNotFound
}

func clone(u *models.User) *models.User {
	c := *u
	c.BlogIDs = slices.Clone(u.BlogIDs)
	return &c
}
