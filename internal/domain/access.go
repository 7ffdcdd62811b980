package domain

import "github.com/tu-usuario/crm-closers/internal/domain/entity"

// Identity es el usuario autenticado extraído del token: suficiente para
// todas las decisiones de autorización sin volver a consultar la DB.
type Identity struct {
	UserID string
	Role   string // entity.RoleAdmin | entity.RoleCloser
}

// IsAdmin indica si la identidad tiene rol ADMIN.
func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}

// CanAccess es el predicado único de autorización sobre recursos con dueño:
// ADMIN accede a todo; un CLOSER solo a los recursos cuyo ownerID coincide
// con su propio UserID. Cada caso de uso deriva ownerID según el recurso
// (campo directo o transitivo vía Client/Meeting).
func CanAccess(id Identity, ownerID string) bool {
	if id.IsAdmin() {
		return true
	}
	return id.UserID == ownerID
}
