package model

// RoleID is the numeric role identifier persisted on accounts.
type RoleID int

// RoleName enumerates platform roles.
type RoleName string

const (
	RoleAdmin   RoleName = "ADMIN"
	RoleStaff   RoleName = "STAFF"
	RoleUser    RoleName = "USER"
	RoleManager RoleName = "MANAGER"
	RoleSeller  RoleName = "SELLER"
)

// Role is an immutable role record.
type Role struct {
	ID   RoleID
	Name RoleName
}

// RoleDirectory resolves role records.
type RoleDirectory interface {
	ByName(name RoleName) (Role, error)
	ByID(id RoleID) (Role, error)
	All() []Role
}
