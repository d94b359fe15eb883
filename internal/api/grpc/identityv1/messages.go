package identityv1

import "time"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type FederatedLoginRequest struct {
	IDToken string `json:"id_token"`
}

type LogoutRequest struct{}

type LogoutResponse struct {
	LoggedOut bool `json:"logged_out"`
}

// Session is returned by every call that establishes or extends a session.
type Session struct {
	AccountID    int64  `json:"account_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name,omitempty"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Account struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	RoleID    int       `json:"role_id"`
	Role      string    `json:"role"`
	Enabled   bool      `json:"enabled"`
	NonLocked bool      `json:"non_locked"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MeRequest struct{}

// UpdateSelfRequest changes the caller's own account. Nil fields are left untouched.
type UpdateSelfRequest struct {
	ID       int64   `json:"id"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

type CreateWithRoleRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

type UpdateWithRoleRequest struct {
	ID       int64   `json:"id"`
	RoleID   int     `json:"role_id"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

// AccountIDRequest addresses a single account by id.
type AccountIDRequest struct {
	ID int64 `json:"id"`
}

type ListRolesRequest struct{}

type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ListRolesResponse struct {
	Roles []Role `json:"roles"`
}

// StatsRequest counts registrations after Since. A nil Since means the last 30 days.
type StatsRequest struct {
	Since *time.Time `json:"since,omitempty"`
}

type StatsResponse struct {
	Active          int64     `json:"active"`
	RegisteredSince int64     `json:"registered_since"`
	Since           time.Time `json:"since"`
}
