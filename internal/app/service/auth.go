// Package service contains the shared-link lifecycle engine together
// with its collaborators: JWT session handling and the GitHub client.
package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionUser is the verified identity minted into a session after a
// successful GitHub OAuth exchange.
type SessionUser struct {
	// Login is the GitHub login; it is the owner id on every link.
	Login string

	// Name is the display name shown on share pages.
	Name string

	// GitHubToken is the OAuth access token used for repository fetches
	// during this session.
	GitHubToken string
}

// Claims represents the claims included in the session JWT. It embeds
// the RegisteredClaims from the JWT package and carries the GitHub
// identity.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the GitHub login of the session owner.
	UserID string `json:"user_id"`

	// DisplayName is the owner's display name.
	DisplayName string `json:"display_name"`

	// GitHubToken is the OAuth access token for this session.
	GitHubToken string `json:"github_token"`
}

// TokenExp defines the lifetime of a session token.
const TokenExp = time.Hour * 24

// Auth provides methods for building and parsing session JWTs.
type Auth struct {
	secret []byte
}

// NewAuth creates an Auth instance signing with the given secret.
func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// BuildJWTString generates a session JWT for the given user. Sessions
// are only ever minted after an OAuth exchange; the middleware never
// invents one.
func (a *Auth) BuildJWTString(user SessionUser) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID:      user.Login,
		DisplayName: user.Name,
		GitHubToken: user.GitHubToken,
	})

	return token.SignedString(a.secret)
}

// ParseClaims parses the session JWT from the provided cookie and
// returns the claims embedded within it.
func (a *Auth) ParseClaims(c *http.Cookie) (*Claims, error) {
	return a.ParseRawJWT(c.Value)
}

func (a *Auth) ParseRawJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token or claims")
	}

	return claims, nil
}

var _ AuthIface = (*Auth)(nil)
