// Package httpserver exposes the blog list services over HTTP/JSON.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/logging"
	"github.com/dmitrijs2005/bloglist/internal/server/metrics"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/dmitrijs2005/bloglist/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	shutdownTimeout = 5 * time.Second
	maxBodyBytes    = 1 << 20
)

type UserService interface {
	Register(ctx context.Context, username, name, password string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
}

type BlogService interface {
	List(ctx context.Context) ([]*models.Blog, error)
	Create(ctx context.Context, fields models.BlogFields, owner *models.User) (*services.CreateResult, error)
	Update(ctx context.Context, id string, fields models.BlogFields) (*models.Blog, error)
	Delete(ctx context.Context, id string, user *models.User) error
	Stats(ctx context.Context) (*models.BlogStats, error)
}

// Authenticator turns an Authorization header into a live user.
type Authenticator interface {
	Authenticate(ctx context.Context, header string) (*models.User, error)
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	users    UserService
	blogs    BlogService
	auth     Authenticator
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

func NewHTTPServer(a string, l logging.Logger, us UserService, bs BlogService, au Authenticator, m *metrics.Metrics, g prometheus.Gatherer) *HTTPServer {
	return &HTTPServer{
		address:  a,
		logger:   l.With("module", "http_server"),
		users:    us,
		blogs:    bs,
		auth:     au,
		metrics:  m,
		gatherer: g,
	}
}

// Handler returns the routed and instrumented API.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/blogs", s.listBlogs)
	mux.HandleFunc("POST /api/blogs", s.requireUser(s.createBlog))
	mux.HandleFunc("PUT /api/blogs/{id}", s.updateBlog)
	mux.HandleFunc("DELETE /api/blogs/{id}", s.requireUser(s.deleteBlog))
	mux.HandleFunc("GET /api/stats", s.blogStats)

	mux.HandleFunc("GET /api/users", s.listUsers)
	mux.HandleFunc("POST /api/users", s.registerUser)
	mux.HandleFunc("POST /api/login", s.login)

	mux.Handle("GET /metrics", metrics.Handler(s.gatherer))

	mux.HandleFunc("/", s.unknownEndpoint)

	return s.instrument(mux)
}

func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
