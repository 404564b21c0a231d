// Package cli implements the interactive blog list command-line client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dmitrijs2005/bloglist/internal/client/client"
	"github.com/dmitrijs2005/bloglist/internal/client/config"
)

var errNotLoggedIn = errors.New("please log in first")

// blogAPI is the part of client.HTTPClient the CLI uses.
type blogAPI interface {
	Register(ctx context.Context, username, name, password string) error
	Login(ctx context.Context, username, password string) (*client.LoginResult, error)
	SetToken(token string)
	ListBlogs(ctx context.Context) ([]client.Blog, error)
	CreateBlog(ctx context.Context, in client.BlogInput) (*client.Blog, error)
	UpdateBlog(ctx context.Context, id string, in client.BlogInput) (*client.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
	Stats(ctx context.Context) (*client.Stats, error)
}

type App struct {
	config   *config.Config
	api      blogAPI
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "Connected to %s (type 'help' for commands)\n", a.config.ServerURL)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) status() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, username, name, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	res, err := a.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	a.userName = res.Username
	fmt.Fprintf(a.out, "Logged in as %s\n", res.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.SetToken("")
	a.userName = ""
	return nil
}

func (a *App) List(ctx context.Context) error {
	blogs, err := a.api.ListBlogs(ctx)
	if err != nil {
		return err
	}

	for _, b := range blogs {
		owner := "-"
		if b.User != nil {
			owner = b.User.Username
		}
		fmt.Fprintf(a.out, "%s  %q by %s, %d likes, added by %s\n", b.ID, b.Title, b.Author, b.Likes, owner)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	var in client.BlogInput
	var err error

	if in.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if in.Author, err = GetSimpleText(a.reader, "Author", a.out); err != nil {
		return err
	}
	if in.URL, err = GetSimpleText(a.reader, "URL", a.out); err != nil {
		return err
	}

	likes, err := GetSimpleText(a.reader, "Likes (empty for 0)", a.out)
	if err != nil {
		return err
	}
	if likes != "" {
		n, err := strconv.Atoi(likes)
		if err != nil {
			return fmt.Errorf("likes must be a number: %w", err)
		}
		in.Likes = &n
	}

	b, err := a.api.CreateBlog(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added %s\n", b.ID)
	return nil
}

// Like re-submits the blog with one more like.
func (a *App) Like(ctx context.Context, id string) error {
	blogs, err := a.api.ListBlogs(ctx)
	if err != nil {
		return err
	}

	for _, b := range blogs {
		if b.ID != id {
			continue
		}
		likes := b.Likes + 1
		updated, err := a.api.UpdateBlog(ctx, id, client.BlogInput{Title: b.Title, Author: b.Author, URL: b.URL, Likes: &likes})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%q now has %d likes\n", updated.Title, updated.Likes)
		return nil
	}

	return client.ErrNotFound
}

func (a *App) Delete(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if err := a.api.DeleteBlog(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st, err := a.api.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Total likes: %d\n", st.TotalLikes)
	if st.FavoriteBlog != nil {
		fmt.Fprintf(a.out, "Favorite blog: %q by %s (%d likes)\n", st.FavoriteBlog.Title, st.FavoriteBlog.Author, st.FavoriteBlog.Likes)
	}
	if st.MostBlogs != nil {
		fmt.Fprintf(a.out, "Most blogs: %s (%d)\n", st.MostBlogs.Author, st.MostBlogs.Blogs)
	}
	if st.MostLikes != nil {
		fmt.Fprintf(a.out, "Most likes: %s (%d)\n", st.MostLikes.Author, st.MostLikes.Likes)
	}
	return nil
}
