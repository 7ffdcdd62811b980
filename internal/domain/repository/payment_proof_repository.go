package repository

import "github.com/tu-usuario/crm-closers/internal/domain/entity"

// PaymentProofRepository define el puerto de persistencia para PaymentProof.
type PaymentProofRepository interface {
	Create(proof *entity.PaymentProof) error
	GetByID(id string) (*entity.PaymentProof, error)
	// ListByClient devuelve los comprobantes de un cliente, uploaded_at desc.
	ListByClient(clientID string) ([]*entity.PaymentProof, error)
	Delete(id string) error
}
