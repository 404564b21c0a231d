package httpserver

import "github.com/dmitrijs2005/bloglist/internal/server/models"

type blogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

func (b blogRequest) fields() models.BlogFields {
	return models.BlogFields{Title: b.Title, Author: b.Author, URL: b.URL, Likes: b.Likes}
}

type userRef struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type blogResponse struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	URL    string   `json:"url"`
	Likes  int      `json:"likes"`
	User   *userRef `json:"user"`
}

func toBlogResponse(b *models.Blog) *blogResponse {
	if b == nil {
		return nil
	}
	out := &blogResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
	if b.User != nil {
		out.User = &userRef{Username: b.User.Username, Name: b.User.Name}
	}
	return out
}

func toBlogResponses(blogs []*models.Blog) []*blogResponse {
	out := make([]*blogResponse, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, toBlogResponse(b))
	}
	return out
}

type registerRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type userBlog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type userResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Blogs    []*userBlog `json:"blogs"`
}

func toUserResponse(u *models.User) *userResponse {
	out := &userResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Blogs:    make([]*userBlog, 0, len(u.Blogs)),
	}
	for _, b := range u.Blogs {
		out.Blogs = append(out.Blogs, &userBlog{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL})
	}
	return out
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type authorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type authorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type statsResponse struct {
	TotalLikes   int           `json:"totalLikes"`
	FavoriteBlog *blogResponse `json:"favoriteBlog"`
	MostBlogs    *authorBlogs  `json:"mostBlogs"`
	MostLikes    *authorLikes  `json:"mostLikes"`
}

func toStatsResponse(s *models.BlogStats) *statsResponse {
	out := &statsResponse{
		TotalLikes:   s.TotalLikes,
		FavoriteBlog: toBlogResponse(s.FavoriteBlog),
	}
	if s.MostBlogs != nil {
		out.MostBlogs = &authorBlogs{Author: s.MostBlogs.Author, Blogs: s.MostBlogs.Blogs}
	}
	if s.MostLikes != nil {
		out.MostLikes = &authorLikes{Author: s.MostLikes.Author, Likes: s.MostLikes.Likes}
	}
	return out
}
