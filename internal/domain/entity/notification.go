package entity

import "time"

// Notification es un mensaje para un usuario con bandera de leído.
// La única mutación permitida es la transición IsRead false -> true.
type Notification struct {
	ID        string
	UserID    string // destinatario
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
