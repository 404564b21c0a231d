package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/dmitrijs2005/bloglist/internal/server/models"
)

// PrincipalResolver looks a user up by id. Implementations must not cache:
// a user removed after a token was issued has to fail the next request.
type PrincipalResolver interface {
	Resolve(ctx context.Context, id string) (*models.User, error)
}

// Authenticator turns an Authorization header into the user making the
// request.
type Authenticator struct {
	codec    *Codec
	resolver PrincipalResolver
}

func NewAuthenticator(codec *Codec, resolver PrincipalResolver) *Authenticator {
	return &Authenticator{codec: codec, resolver: resolver}
}

// Authenticate runs the whole pipeline: bearer extraction, token decoding,
// payload check and user lookup. It returns a user only when every step
// succeeded.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (*models.User, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}

	payload, err := a.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	if payload.PrincipalID == "" {
		return nil, common.ErrInvalidToken
	}

	user, err := a.resolver.Resolve(ctx, payload.PrincipalID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownPrincipal
		}
		return nil, fmt.Errorf("resolving principal: %w", err)
	}

	return user, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, common.BearerPrefix) {
		return "", common.ErrMissingToken
	}

	token := strings.TrimSpace(header[len(common.BearerPrefix):])
	if token == "" {
		return "", common.ErrMissingToken
	}

	return token, nil
}
