package dto

import (
	"encoding/json"
	"time"

	"github.com/tu-usuario/crm-closers/internal/domain/entity"
)

// CreateClientRequest entrada para crear un cliente. El Closer dueño sale
// del token, nunca del body. Status vacío = PAGO_PENDIENTE.
type CreateClientRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email" validate:"required,email"`
	Status      string `json:"status,omitempty"`
}

// CreateClientResponse salida de la creación.
type CreateClientResponse struct {
	ClientID string `json:"clientId"`
	Message  string `json:"message"`
}

// ClientResponse vista de un cliente.
type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName,omitempty"`
	Email       string    `json:"email"`
	CloserID    string    `json:"closerId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToClientResponse mapea la entidad a la vista.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		CompanyName: c.CompanyName,
		Email:       c.Email,
		CloserID:    c.CloserID,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ClientFormResponse formulario 1:1 del cliente dentro del detalle.
type ClientFormResponse struct {
	ID          string          `json:"id"`
	FormData    json.RawMessage `json:"formData"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// ClientDetailResponse detalle completo: cliente + formulario + comprobantes
// + reuniones. Form es null si no hay; las listas siempre son arrays (nunca null).
type ClientDetailResponse struct {
	ClientResponse
	Form          *ClientFormResponse    `json:"form"`
	PaymentProofs []PaymentProofResponse `json:"paymentProofs"`
	Meetings      []MeetingResponse      `json:"meetings"`
}

// UpdateStatusRequest entrada para cambiar el estado del cliente.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ReassignRequest entrada para reasignar el cliente a otro Closer (ADMIN).
type ReassignRequest struct {
	NewCloserID string `json:"newCloserId" validate:"required"`
}
