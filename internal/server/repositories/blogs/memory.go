package blogs

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps blogs in process memory, in creation order.
type MemoryRepository struct {
	mu    sync.RWMutex
	blogs []*models.Blog
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.ID == "" {
		blog.ID = uuid.NewString()
	}
	blog.CreatedAt = time.Now()

	stored := *blog
	stored.User = nil
	r.blogs = append(r.blogs, &stored)

	out := stored
	return &out, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		c := *b
		result = append(result, &c)
	}
	return result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(id); i >= 0 {
		c := *r.blogs[i]
		return &c, nil
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Update(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(blog.ID)
	if i < 0 {
		return nil, common.ErrorNotFound
	}

	stored := r.blogs[i]
	stored.Title = blog.Title
	stored.Author = blog.Author
	stored.URL = blog.URL
	stored.Likes = blog.Likes

	c := *stored
	return &c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
	return nil
}

func (r *MemoryRepository) index(id string) int {
	for i, b := range r.blogs {
		if b.ID == id {
			return i
		}
	}
	return -1
}
