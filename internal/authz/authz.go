// Package authz holds the ownership policy applied before any read or
// write of an application and its sub-resources.
package authz

import "github.com/jobtrack-dev/jobtrack/internal/types"

// Actor is the minimal identity needed for an access decision.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsSuperAdmin() bool {
	return a.Role == types.RoleSuperAdmin
}

// CanAccessApplication reports whether the actor may read or mutate an
// application owned by ownerID. Interviews and notes derive their access
// from the owner of the parent application.
func CanAccessApplication(a Actor, ownerID uint) bool {
	return a.IsSuperAdmin() || a.ID == ownerID
}

// CanModifyNote is stricter than read access: only the note's author or a
// super admin may update or delete a note.
func CanModifyNote(a Actor, authorID uint) bool {
	return a.IsSuperAdmin() || a.ID == authorID
}

// CanViewAdmin gates the admin resource-schema endpoints.
func CanViewAdmin(a Actor) bool {
	return a.Role == types.RoleAdmin || a.Role == types.RoleSuperAdmin
}
