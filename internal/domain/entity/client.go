package entity

import "time"

// Estados del ciclo de vida de un Client.
const (
	StatusPagoPendiente = "PAGO_PENDIENTE"
	StatusPagoParcial   = "PAGO_PARCIAL"
	StatusPagado        = "PAGADO"
	StatusCancelado     = "CANCELADO"
)

// ValidStatus indica si el estado pertenece al enum de Clients.
func ValidStatus(status string) bool {
	switch status {
	case StatusPagoPendiente, StatusPagoParcial, StatusPagado, StatusCancelado:
		return true
	}
	return false
}

// Client representa un cliente asignado a exactamente un Closer (CloserID).
// La reasignación a otro Closer es una acción de ADMIN.
type Client struct {
	ID          string
	Name        string
	CompanyName string // opcional, vacío si no aplica
	Email       string
	CloserID    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClientForm es el formulario 1:1 de un cliente. Solo se lee al armar el
// detalle; su escritura queda fuera de este servicio.
type ClientForm struct {
	ID          string
	ClientID    string
	FormData    []byte // jsonb crudo
	SubmittedAt time.Time
}
