// Package auth authenticates requests and authorizes mutations: a signed
// bearer-token codec, the pipeline that turns an Authorization header into a
// live user, and the ownership guard applied before deletes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the registered claims plus the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// Payload is a decoded and verified token.
type Payload struct {
	PrincipalID string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// Codec issues and verifies HS256 tokens. The key is copied at construction
// and never changes afterwards, so a Codec is safe for concurrent use.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec builds a Codec signing with secretKey; issued tokens live for ttl.
func NewCodec(secretKey []byte, ttl time.Duration) (*Codec, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("empty signing key")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid token ttl %v", ttl)
	}

	key := make([]byte, len(secretKey))
	copy(key, secretKey)

	return &Codec{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for principalID.
func (c *Codec) Issue(principalID string) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: principalID,
	})

	tokenString, err := token.SignedString(c.key)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Decode verifies tokenString and returns its payload. Failures are one of
// common.ErrMalformedToken, common.ErrInvalidSignature,
// common.ErrTokenExpired or common.ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (*Payload, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, classify(err)
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	p := &Payload{PrincipalID: claims.UserID}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}

	return p, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", common.ErrMalformedToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", common.ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	default:
		return fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
}
