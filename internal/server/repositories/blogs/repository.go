package blogs

import (
	"context"

	"github.com/dmitrijs2005/bloglist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	List(ctx context.Context) ([]*models.Blog, error)
	GetByID(ctx context.Context, id string) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}
