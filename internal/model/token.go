package model

import "time"

// TokenKind discriminates access tokens from refresh tokens.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Principal is the identity a token is issued for.
type Principal struct {
	Email string
	Role  RoleName
}

// Claims is the validated content of a token.
type Claims struct {
	ID        string
	Subject   string
	Role      RoleName
	Kind      TokenKind
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager issues and validates signed tokens.
type TokenManager interface {
	IssueAccess(principal Principal) (string, error)
	IssueRefresh(principal Principal) (string, error)
	Validate(token string, expected TokenKind) (Claims, error)
	SubjectOf(token string, expected TokenKind) (string, error)
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
