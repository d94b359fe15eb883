package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/foodygo/identity-server/internal/model"
)

// Claims represents JWT claims with token kind and role.
type Claims struct {
	jwt.RegisteredClaims
	Role      model.RoleName  `json:"role"`
	TokenType model.TokenKind `json:"typ"`
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// Option customizes a JWT manager.
type Option func(*JWT)

// WithClock overrides the time source used for issuing tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		if now != nil {
			j.now = now
		}
	}
}

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

// NewJWT creates a new JWT token manager. Non-positive TTLs fall back to defaults.
func NewJWT(secretKey string, accessTTL, refreshTTL time.Duration, opts ...Option) *JWT {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	j := &JWT{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// IssueAccess creates a short-lived access token.
func (j *JWT) IssueAccess(principal model.Principal) (string, error) {
	return j.issue(principal, model.TokenKindAccess, j.accessTTL)
}

// IssueRefresh creates a long-lived refresh token.
func (j *JWT) IssueRefresh(principal model.Principal) (string, error) {
	return j.issue(principal, model.TokenKindRefresh, j.refreshTTL)
}

func (j *JWT) issue(principal model.Principal, kind model.TokenKind, ttl time.Duration) (string, error) {
	if principal.Email == "" {
		return "", fmt.Errorf("failed to sign %s token: empty subject", kind)
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   principal.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:      principal.Role,
		TokenType: kind,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	return tokenString, nil
}

// Validate checks signature, expiry and kind and returns the claims.
func (j *JWT) Validate(tokenString string, expected model.TokenKind) (model.Claims, error) {
	if tokenString == "" {
		return model.Claims{}, fmt.Errorf("empty %s token: %w", expected, model.ErrUnauthorized)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil {
		return model.Claims{}, errors.Join(fmt.Errorf("failed to parse %s token: %w", expected, err), model.ErrUnauthorized)
	}
	if !token.Valid {
		return model.Claims{}, fmt.Errorf("%s token is invalid: %w", expected, model.ErrUnauthorized)
	}
	if claims.TokenType != expected {
		return model.Claims{}, fmt.Errorf("token type mismatch: %s: %w", claims.TokenType, model.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return model.Claims{}, fmt.Errorf("%s token has no subject: %w", expected, model.ErrUnauthorized)
	}

	out := model.Claims{
		ID:      claims.ID,
		Subject: claims.Subject,
		Role:    claims.Role,
		Kind:    claims.TokenType,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// SubjectOf validates the token and returns its subject email.
func (j *JWT) SubjectOf(tokenString string, expected model.TokenKind) (string, error) {
	claims, err := j.Validate(tokenString, expected)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
