package models

import "time"

// Blog is a shared entry. UserID is the owner, fixed at creation; it is empty
// when the owning user no longer exists. User is filled in by the service
// layer when the owner is expanded for output.
type Blog struct {
	ID        string
	Title     string
	Author    string
	URL       string
	Likes     int
	UserID    string
	User      *UserRef
	CreatedAt time.Time
}

// BlogFields carries the caller-supplied, mutable part of a blog. Likes is
// optional: nil means "not supplied".
type BlogFields struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}
