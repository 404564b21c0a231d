package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bloglist/internal/dbx"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/blogs"
	"github.com/dmitrijs2005/bloglist/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX and owns the
// transaction boundary for the backing store.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Blogs(db dbx.DBTX) blogs.Repository
	WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error
}
