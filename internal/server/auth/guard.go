package auth

import (
	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
)

// AuthorizeDelete allows user to delete blog only when user owns it. A blog
// whose owner is gone can be deleted by nobody.
func AuthorizeDelete(blog *models.Blog, user *models.User) error {
	if blog == nil || user == nil || blog.UserID == "" {
		return common.ErrForbidden
	}
	if blog.UserID != user.ID {
		return common.ErrForbidden
	}
	return nil
}
