package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/auth"
)

const msgBlogNotFound = "blog not found"

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed JSON body", common.ErrValidation)
	}
	return nil
}

func (s *HTTPServer) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.blogs.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, toBlogResponses(blogs))
}

func (s *HTTPServer) createBlog(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrInvalidToken, "")
		return
	}

	res, err := s.blogs.Create(r.Context(), req.fields(), user)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, toBlogResponse(res.Blog))
}

func (s *HTTPServer) updateBlog(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	blog, err := s.blogs.Update(r.Context(), r.PathValue("id"), req.fields())
	if err != nil {
		s.writeError(w, r, err, msgBlogNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toBlogResponse(blog))
}

func (s *HTTPServer) deleteBlog(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		s.writeError(w, r, common.ErrInvalidToken, "")
		return
	}

	if err := s.blogs.Delete(r.Context(), r.PathValue("id"), user); err != nil {
		s.writeError(w, r, err, msgBlogNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) blogStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.blogs.Stats(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(st))
}

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	out := make([]*userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) registerUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	res, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: res.Token, Username: res.User.Username, Name: res.User.Name})
}

func (s *HTTPServer) unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: msgUnknownEndpoint})
}
