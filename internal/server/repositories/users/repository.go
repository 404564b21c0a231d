package users

import (
	"context"

	"github.com/dmitrijs2005/bloglist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	AppendBlog(ctx context.Context, userID, blogID string) error
}
