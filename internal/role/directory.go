// Package role provides the static role directory seeded at bootstrap.
package role

import (
	"fmt"

	"github.com/foodygo/identity-server/internal/model"
)

// Identifiers match the rows seeded by the initial migration.
const (
	AdminID   model.RoleID = 1
	StaffID   model.RoleID = 2
	UserID    model.RoleID = 3
	ManagerID model.RoleID = 4
	SellerID  model.RoleID = 5
)

var table = [...]model.Role{
	{ID: AdminID, Name: model.RoleAdmin},
	{ID: StaffID, Name: model.RoleStaff},
	{ID: UserID, Name: model.RoleUser},
	{ID: ManagerID, Name: model.RoleManager},
	{ID: SellerID, Name: model.RoleSeller},
}

var _ model.RoleDirectory = (*Directory)(nil)

// Directory resolves roles from a closed lookup table.
type Directory struct {
	byID   map[model.RoleID]model.Role
	byName map[model.RoleName]model.Role
}

// NewDirectory creates a Directory over the platform roles.
func NewDirectory() *Directory {
	d := &Directory{
		byID:   make(map[model.RoleID]model.Role, len(table)),
		byName: make(map[model.RoleName]model.Role, len(table)),
	}
	for _, r := range table {
		d.byID[r.ID] = r
		d.byName[r.Name] = r
	}
	return d
}

// ByName returns the role with the given name.
func (d *Directory) ByName(name model.RoleName) (model.Role, error) {
	r, ok := d.byName[name]
	if !ok {
		return model.Role{}, fmt.Errorf("role %q: %w", name, model.ErrNotFound)
	}
	return r, nil
}

// ByID returns the role with the given id.
func (d *Directory) ByID(id model.RoleID) (model.Role, error) {
	r, ok := d.byID[id]
	if !ok {
		return model.Role{}, fmt.Errorf("role %d: %w", id, model.ErrNotFound)
	}
	return r, nil
}

// All returns every role ordered by id.
func (d *Directory) All() []model.Role {
	out := make([]model.Role, len(table))
	copy(out, table[:])
	return out
}
