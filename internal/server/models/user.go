// Package models defines the server-side data models persisted by the
// repositories.
package models

import "time"

// User is an authenticated principal. Username is unique and never changes.
// BlogIDs lists the blogs the user created, in creation order; it is only
// ever appended to. Blogs is filled in by the service layer when the owned
// blogs are expanded for output.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	BlogIDs      []string
	Blogs        []*Blog
	CreatedAt    time.Time
}

// Ref is the public projection of a user embedded in a blog.
func (u *User) Ref() *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{Username: u.Username, Name: u.Name}
}

// UserRef exposes the owner of a blog without credentials or identifiers.
type UserRef struct {
	Username string
	Name     string
}
