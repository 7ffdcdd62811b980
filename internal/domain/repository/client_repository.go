package repository

import "github.com/tu-usuario/crm-closers/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// GetFormByClient devuelve el formulario 1:1 del cliente, o nil si no hay.
	GetFormByClient(clientID string) (*entity.ClientForm, error)
	// ListByCloser devuelve los clientes de un Closer, updated_at desc.
	ListByCloser(closerID string) ([]*entity.Client, error)
	UpdateStatus(id, status string) error
	Reassign(id, newCloserID string) error
	// Delete elimina el cliente; el cascade sobre client_forms/payment_proofs
	// y el SET NULL sobre meetings.client_id los aplica la FK, no la app.
	Delete(id string) error
}
