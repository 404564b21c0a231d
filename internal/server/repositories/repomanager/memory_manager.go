package repomanager

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves the same repository instances regardless
// of the DBTX passed in. It is used when no database DSN is configured.
type InMemoryRepositoryManager struct {
	txMu  sync.Mutex
	users *users.MemoryRepository
	blogs *blogs.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		blogs: blogs.NewMemoryRepository(),
	}
}

// RunMigrations is a no-op for the in-memory store.
func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Blogs(db dbx.DBTX) blogs.Repository {
	return m.blogs
}

// WithTx serializes fn against other transactions. Writes are not rolled back
// when fn fails.
func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, nil)
}
