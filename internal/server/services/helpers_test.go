package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/auth"
	"github.com/dmitrijs2005/bloglist/internal/server/config"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	blogsrepo "github.com/dmitrijs2005/bloglist/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/bloglist/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

func newCodec(t *testing.T) *auth.Codec {
	t.Helper()
	c, err := auth.NewCodec([]byte("k"), time.Hour)
	require.NoError(t, err)
	return c
}

func newServices(t *testing.T, m repomanager.RepositoryManager) (*UserService, *BlogService) {
	t.Helper()
	cfg := &config.Config{PasswordHashCost: bcrypt.MinCost}
	return NewUserService(nil, m, newCodec(t), cfg), NewBlogService(nil, m, logging.Nop{})
}

func mustRegister(t *testing.T, s *UserService, username string) *models.User {
	t.Helper()
	u, err := s.Register(context.Background(), username, username+" name", "secret")
	require.NoError(t, err)
	return u
}

func intPtr(v int) *int { return &v }

// failingUsers breaks selected user repository calls.
type failingUsers struct {
	usersrepo.Repository
	appendErr error
	listErr   error
	getErr    error
}

func (f *failingUsers) AppendBlog(ctx context.Context, userID, blogID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	return f.Repository.AppendBlog(ctx, userID, blogID)
}

func (f *failingUsers) List(ctx context.Context) ([]*models.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Repository.List(ctx)
}

func (f *failingUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Repository.GetByUsername(ctx, username)
}

// failingBlogs breaks selected blog repository calls.
type failingBlogs struct {
	blogsrepo.Repository
	createErr error
	listErr   error
}

func (f *failingBlogs) Create(ctx context.Context, b *models.Blog) (*models.Blog, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.Repository.Create(ctx, b)
}

func (f *failingBlogs) List(ctx context.Context) ([]*models.Blog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Repository.List(ctx)
}

// fakeRepoManager wraps the in-memory manager, swapping in failing repositories.
type fakeRepoManager struct {
	*repomanager.InMemoryRepositoryManager
	users *failingUsers
	blogs *failingBlogs
}

func newFakeRepoManager() *fakeRepoManager {
	inner := repomanager.NewInMemoryRepositoryManager()
	return &fakeRepoManager{
		InMemoryRepositoryManager: inner,
		users:                     &failingUsers{Repository: inner.Users(nil)},
		blogs:                     &failingBlogs{Repository: inner.Blogs(nil)},
	}
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.users }
func (m *fakeRepoManager) Blogs(db dbx.DBTX) blogsrepo.Repository { return m.blogs }
