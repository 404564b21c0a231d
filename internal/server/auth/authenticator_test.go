package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	users map[string]*models.User
	err   error
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, id string) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "bearer abc", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "abc.def.ghi", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	codec := newTestCodec(t, "secret", time.Hour)
	root := &models.User{ID: "u-root", Username: "root"}
	resolver := &fakeResolver{users: map[string]*models.User{root.ID: root}}
	a := NewAuthenticator(codec, resolver)

	valid, err := codec.Issue(root.ID)
	require.NoError(t, err)
	ghost, err := codec.Issue("u-ghost")
	require.NoError(t, err)
	anonymous, err := codec.Issue("")
	require.NoError(t, err)
	foreign, err := newTestCodec(t, "other", time.Hour).Issue(root.ID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "valid", header: "Bearer " + valid},
		{name: "missing header", header: "", wantErr: common.ErrMissingToken},
		{name: "wrong scheme", header: "Token " + valid, wantErr: common.ErrMissingToken},
		{name: "malformed", header: "Bearer nonsense", wantErr: common.ErrMalformedToken},
		{name: "bad signature", header: "Bearer " + foreign, wantErr: common.ErrInvalidSignature},
		{name: "no principal id", header: "Bearer " + anonymous, wantErr: common.ErrInvalidToken},
		{name: "unknown principal", header: "Bearer " + ghost, wantErr: common.ErrUnknownPrincipal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := a.Authenticate(context.Background(), tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Same(t, root, u)
		})
	}
}

func TestAuthenticate_ResolverFailureIsNotUnknownPrincipal(t *testing.T) {
	codec := newTestCodec(t, "secret", time.Hour)
	dbDown := errors.New("db down")
	a := NewAuthenticator(codec, &fakeResolver{err: dbDown})

	tok, err := codec.Issue("u1")
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background(), "Bearer "+tok)
	require.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, common.ErrUnknownPrincipal)
}

func TestAuthenticate_ResolvesOnEveryCall(t *testing.T) {
	codec := newTestCodec(t, "secret", time.Hour)
	resolver := &fakeResolver{users: map[string]*models.User{"u1": {ID: "u1"}}}
	a := NewAuthenticator(codec, resolver)

	tok, err := codec.Issue("u1")
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background(), "Bearer "+tok)
	require.NoError(t, err)

	delete(resolver.users, "u1")
	_, err = a.Authenticate(context.Background(), "Bearer "+tok)
	require.ErrorIs(t, err, common.ErrUnknownPrincipal)
	assert.Equal(t, 2, resolver.calls)
}
