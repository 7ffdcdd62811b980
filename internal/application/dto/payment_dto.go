package dto

import (
	"time"

	"github.com/tu-usuario/crm-closers/internal/domain/entity"
)

// PaymentProofResponse vista de un comprobante de pago.
type PaymentProofResponse struct {
	ProofID    string    `json:"proofId"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ToPaymentProofResponse mapea la entidad a la vista.
func ToPaymentProofResponse(p *entity.PaymentProof) PaymentProofResponse {
	return PaymentProofResponse{
		ProofID:    p.ID,
		FileURL:    p.FileURL,
		UploadedAt: p.UploadedAt,
	}
}

// UploadProofResponse salida de la subida de un comprobante.
type UploadProofResponse struct {
	ProofID string `json:"proofId"`
	Message string `json:"message"`
}
