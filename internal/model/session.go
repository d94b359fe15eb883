package model

// SessionResult is returned by every operation that establishes or extends a session.
type SessionResult struct {
	AccountID    int64
	Email        string
	FullName     string
	Role         RoleName
	AccessToken  string
	RefreshToken string
}

// Caller is the authenticated identity behind a request.
type Caller struct {
	Email string
	Role  RoleName
}

// IsAdmin reports whether the caller holds the ADMIN role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
