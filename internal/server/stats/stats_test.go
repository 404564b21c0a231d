package stats

import (
	"testing"

	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blog(title, author string, likes int) *models.Blog {
	return &models.Blog{ID: title, Title: title, Author: author, URL: "https://" + title, Likes: likes}
}

func sample() []*models.Blog {
	return []*models.Blog{
		blog("React patterns", "Michael Chan", 7),
		blog("Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5),
		blog("Canonical string reduction", "Edsger W. Dijkstra", 12),
		blog("First class tests", "Robert C. Martin", 10),
		blog("TDD harms architecture", "Robert C. Martin", 0),
		blog("Type wars", "Robert C. Martin", 2),
	}
}

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []*models.Blog
		want  int
	}{
		{name: "nil", blogs: nil, want: 0},
		{name: "empty", blogs: []*models.Blog{}, want: 0},
		{name: "single", blogs: []*models.Blog{blog("a", "x", 5)}, want: 5},
		{name: "many", blogs: sample(), want: 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalLikes(tt.blogs))
		})
	}
}

func TestTotalLikes_OrderIndependent(t *testing.T) {
	blogs := sample()
	reversed := make([]*models.Blog, len(blogs))
	for i, b := range blogs {
		reversed[len(blogs)-1-i] = b
	}
	assert.Equal(t, TotalLikes(blogs), TotalLikes(reversed))
}

func TestFavoriteBlog(t *testing.T) {
	assert.Nil(t, FavoriteBlog(nil))

	blogs := sample()
	fav := FavoriteBlog(blogs)
	require.NotNil(t, fav)
	assert.Equal(t, "Canonical string reduction", fav.Title)
	for _, b := range blogs {
		assert.GreaterOrEqual(t, fav.Likes, b.Likes)
	}
}

func TestFavoriteBlog_TieKeepsFirst(t *testing.T) {
	blogs := []*models.Blog{
		blog("low", "a", 1),
		blog("first", "b", 9),
		blog("second", "c", 9),
	}
	fav := FavoriteBlog(blogs)
	require.NotNil(t, fav)
	assert.Same(t, blogs[1], fav)
}

func TestMostBlogs(t *testing.T) {
	assert.Nil(t, MostBlogs(nil))

	got := MostBlogs(sample())
	require.NotNil(t, got)
	assert.Equal(t, &models.AuthorBlogs{Author: "Robert C. Martin", Blogs: 3}, got)

	single := MostBlogs([]*models.Blog{blog("a", "solo", 4)})
	assert.Equal(t, &models.AuthorBlogs{Author: "solo", Blogs: 1}, single)
}

func TestMostLikes(t *testing.T) {
	assert.Nil(t, MostLikes([]*models.Blog{}))

	got := MostLikes(sample())
	require.NotNil(t, got)
	assert.Equal(t, &models.AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, got)
}

func TestMostLikes_TieReturnsOneOfTheLeaders(t *testing.T) {
	blogs := []*models.Blog{
		blog("a", "x", 3),
		blog("b", "y", 3),
		blog("c", "z", 1),
	}
	got := MostLikes(blogs)
	require.NotNil(t, got)
	assert.Contains(t, []string{"x", "y"}, got.Author)
	assert.Equal(t, 3, got.Likes)
}

func TestAggregatesMatchReaggregation(t *testing.T) {
	blogs := sample()

	mb := MostBlogs(blogs)
	ml := MostLikes(blogs)
	require.NotNil(t, mb)
	require.NotNil(t, ml)

	count, likes := 0, 0
	for _, b := range blogs {
		if b.Author == mb.Author {
			count++
		}
		if b.Author == ml.Author {
			likes += b.Likes
		}
	}
	assert.Equal(t, count, mb.Blogs)
	assert.Equal(t, likes, ml.Likes)
}

func TestCompute(t *testing.T) {
	empty := Compute(nil)
	assert.Equal(t, &models.BlogStats{}, empty)

	full := Compute(sample())
	assert.Equal(t, 36, full.TotalLikes)
	assert.Equal(t, "Canonical string reduction", full.FavoriteBlog.Title)
	assert.Equal(t, 3, full.MostBlogs.Blogs)
	assert.Equal(t, 17, full.MostLikes.Likes)
}
