package entity

import "time"

// MeetingUpdate describe una actualización parcial de Meeting: cada campo
// se toca solo si su puntero no es nil. ClientID es el caso especial del
// contrato HTTP: la presencia de la clave (SetClient) decide si se
// actualiza, y un valor nil explícito desvincula la reunión del cliente.
type MeetingUpdate struct {
	MeetingDate *time.Time
	Location    *string
	Notes       *string
	SetClient   bool
	ClientID    *string // nil con SetClient=true limpia client_id
}

// Empty indica que no hay ningún campo que actualizar.
func (u MeetingUpdate) Empty() bool {
	return u.MeetingDate == nil && u.Location == nil && u.Notes == nil && !u.SetClient
}
