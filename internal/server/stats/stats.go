// Package stats computes aggregates over a snapshot of blogs. All functions
// are pure: they never touch storage and accept any slice, including nil.
//
// Ties between authors are resolved by map iteration order and are therefore
// unspecified; ties between blogs keep the first one encountered.
package stats

import "github.com/dmitrijs2005/bloglist/internal/server/models"

// TotalLikes sums the likes of all blogs.
func TotalLikes(blogs []*models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for no blogs.
func FavoriteBlog(blogs []*models.Blog) *models.Blog {
	var fav *models.Blog
	for _, b := range blogs {
		if fav == nil || b.Likes > fav.Likes {
			fav = b
		}
	}
	return fav
}

// MostBlogs returns the author with the most blogs, or nil for no blogs.
func MostBlogs(blogs []*models.Blog) *models.AuthorBlogs {
	counts := make(map[string]int)
	for _, b := range blogs {
		counts[b.Author]++
	}

	author, n, ok := top(counts)
	if !ok {
		return nil
	}
	return &models.AuthorBlogs{Author: author, Blogs: n}
}

// MostLikes returns the author whose blogs collected the most likes, or nil
// for no blogs.
func MostLikes(blogs []*models.Blog) *models.AuthorLikes {
	likes := make(map[string]int)
	for _, b := range blogs {
		likes[b.Author] += b.Likes
	}

	author, n, ok := top(likes)
	if !ok {
		return nil
	}
	return &models.AuthorLikes{Author: author, Likes: n}
}

// Compute runs every aggregate over the same snapshot.
func Compute(blogs []*models.Blog) *models.BlogStats {
	return &models.BlogStats{
		TotalLikes:   TotalLikes(blogs),
		FavoriteBlog: FavoriteBlog(blogs),
		MostBlogs:    MostBlogs(blogs),
		MostLikes:    MostLikes(blogs),
	}
}

func top(totals map[string]int) (string, int, bool) {
	var (
		best  string
		value int
		found bool
	)
	for k, v := range totals {
		if !found || v > value {
			best, value, found = k, v, true
		}
	}
	return best, value, found
}
