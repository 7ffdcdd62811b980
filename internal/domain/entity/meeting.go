package entity

import "time"

// Meeting representa una reunión de un Closer, opcionalmente vinculada a un
// Client. ClientID nil = reunión de prospección sin cliente asignado.
// Si el cliente se elimina, la FK pone ClientID en NULL sin borrar la reunión.
type Meeting struct {
	ID          string
	CloserID    string
	ClientID    *string
	MeetingDate time.Time
	Location    string // texto o URL, vacío si no aplica
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MeetingDetail es la vista de una reunión con los datos básicos del Closer
// y del Client (si existe), como la devuelve el JOIN de lectura.
type MeetingDetail struct {
	Meeting
	CloserName  string
	CloserEmail string
	ClientName  string // vacío si no hay cliente
	ClientEmail string
}
