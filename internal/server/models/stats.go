package models

// AuthorBlogs is the result of counting blogs per author.
type AuthorBlogs struct {
	Author string
	Blogs  int
}

// AuthorLikes is the result of summing likes per author.
type AuthorLikes struct {
	Author string
	Likes  int
}

// BlogStats bundles every aggregate over a blog snapshot. Nil pointers mean
// the snapshot was empty.
type BlogStats struct {
	TotalLikes   int
	FavoriteBlog *Blog
	MostBlogs    *AuthorBlogs
	MostLikes    *AuthorLikes
}
