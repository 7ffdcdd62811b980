package entity

import "time"

// PaymentProof es la referencia a un comprobante de pago subido para un
// Client. Inmutable una vez creado; solo se puede eliminar.
type PaymentProof struct {
	ID         string
	ClientID   string
	FileURL    string // ej. /uploads/<nombre>, el contenido vive en el file store
	UploadedAt time.Time
}
