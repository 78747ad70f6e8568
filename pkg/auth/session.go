package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookie = "__session"

var (
	ErrMissingSession    = errors.New("missing session token")
	ErrInvalidSession    = errors.New("invalid or expired session")
	ErrNoVerificationKey = errors.New("session verification key is not configured")
)

// Session is the verified identity behind a session token.
type Session struct {
	UserID    string
	SessionID string
	ExpiresAt time.Time
}

type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

// TokenFromRequest reads the session cookie first, then a Bearer authorization header
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

// JWTVerifier checks RS256 session tokens issued by the identity provider.
// Without a key every token is rejected.
type JWTVerifier struct {
	key *rsa.PublicKey
}

// NewJWTVerifier parses a PEM public key. Escaped newlines from env files are accepted.
func NewJWTVerifier(pemKey string) (*JWTVerifier, error) {
	pemKey = strings.TrimSpace(pemKey)
	if pemKey == "" {
		return &JWTVerifier{}, nil
	}

	pemKey = strings.ReplaceAll(pemKey, `\n`, "\n")
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("parse session public key: %w", err)
	}

	return &JWTVerifier{key: key}, nil
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrMissingSession
	}
	if v.key == nil {
		return nil, ErrNoVerificationKey
	}

	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return v.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5*time.Second),
	)
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrInvalidSession
	}

	session := &Session{UserID: sub}
	if sid, ok := claims["sid"].(string); ok {
		session.SessionID = sid
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}

	return session, nil
}
