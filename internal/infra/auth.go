// README: Bearer-token verification used by the HTTP auth middleware.
package infra

import (
	"context"
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Token holds the verified claims used by downstream middleware.
type Token struct {
	UID  string
	Role string
}

// TokenVerifier verifies a raw bearer token string and returns token data.
// Token issuance (login, registration) lives outside this service; we only
// consume already-issued tokens.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, raw string) (*Token, error)
}

type jwtClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// jwtVerifier is the production implementation backed by HS256 JWTs.
type jwtVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) VerifyToken(_ context.Context, raw string) (*Token, error) {
	t, err := jwt.ParseWithClaims(raw, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*jwtClaims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	return &Token{UID: c.Subject, Role: c.Role}, nil
}
