package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/auth"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// instrument logs and measures every request and turns a handler panic into
// a 500 for that request only.
func (s *HTTPServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		defer func() {
			if p := recover(); p != nil {
				if rec.status == 0 {
					s.writeError(rec, r, fmt.Errorf("panic: %v", p), "")
				} else {
					s.logger.Error(r.Context(), "panic after response started", "panic", fmt.Sprint(p))
				}
			}

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			route := routeLabel(r.Pattern)

			s.metrics.ObserveRequest(r.Method, route, status, elapsed)
			s.logger.Info(r.Context(), "request served",
				"method", r.Method, "path", r.URL.Path, "status", status, "duration", elapsed.String())
		}()

		next.ServeHTTP(rec, r)
	})
}

// routeLabel strips the method from a mux pattern so metric cardinality
// stays bounded by the route table.
func routeLabel(pattern string) string {
	if _, path, ok := strings.Cut(pattern, " "); ok {
		pattern = path
	}
	if pattern == "" || pattern == "/" {
		return "unmatched"
	}
	return pattern
}

// requireUser runs the authentication step to completion before next is
// called; next always sees a resolved user in the request context.
func (s *HTTPServer) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.auth.Authenticate(r.Context(), r.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			s.writeError(w, r, err, "")
			return
		}
		next(w, r.WithContext(auth.WithUser(r.Context(), user)))
	}
}
