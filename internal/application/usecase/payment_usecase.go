package usecase

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/domain"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
)

// PaymentUseCase casos de uso de comprobantes de pago. El dueño se deriva
// transitivamente: proof -> client -> closer_id.
type PaymentUseCase struct {
	proofRepo  repository.PaymentProofRepository
	clientRepo repository.ClientRepository
	files      FileStore
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(proofRepo repository.PaymentProofRepository, clientRepo repository.ClientRepository, files FileStore) *PaymentUseCase {
	return &PaymentUseCase{proofRepo: proofRepo, clientRepo: clientRepo, files: files}
}

// accessibleClient aplica la política dueño-o-ADMIN sobre el cliente del path.
func (uc *PaymentUseCase) accessibleClient(id domain.Identity, clientID string) error {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if !domain.CanAccess(id, client.CloserID) {
		return domain.ErrForbidden
	}
	return nil
}

// Upload guarda el archivo en el file store y persiste la referencia.
// filename vacío o reader nil = no llegó archivo en el multipart.
func (uc *PaymentUseCase) Upload(id domain.Identity, clientID, filename string, file io.Reader) (*dto.UploadProofResponse, error) {
	if err := uc.accessibleClient(id, clientID); err != nil {
		return nil, err
	}
	if filename == "" || file == nil {
		return nil, domain.ErrInvalidInput
	}
	fileURL, err := uc.files.Save(filename, file)
	if err != nil {
		return nil, err
	}
	proof := &entity.PaymentProof{
		ID:         uuid.New().String(),
		ClientID:   clientID,
		FileURL:    fileURL,
		UploadedAt: time.Now(),
	}
	if err := uc.proofRepo.Create(proof); err != nil {
		return nil, err
	}
	return &dto.UploadProofResponse{ProofID: proof.ID, Message: "comprobante subido correctamente"}, nil
}

// ListForClient devuelve los comprobantes del cliente, uploaded_at desc.
func (uc *PaymentUseCase) ListForClient(id domain.Identity, clientID string) ([]dto.PaymentProofResponse, error) {
	if err := uc.accessibleClient(id, clientID); err != nil {
		return nil, err
	}
	proofs, err := uc.proofRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentProofResponse, 0, len(proofs))
	for _, p := range proofs {
		out = append(out, dto.ToPaymentProofResponse(p))
	}
	return out, nil
}

// Delete elimina un comprobante. Además del chequeo de dueño sobre el
// cliente, se verifica que el comprobante pertenezca al cliente del path:
// un proofId de otro cliente es NotFound.
func (uc *PaymentUseCase) Delete(id domain.Identity, clientID, proofID string) error {
	if err := uc.accessibleClient(id, clientID); err != nil {
		return err
	}
	proof, err := uc.proofRepo.GetByID(proofID)
	if err != nil {
		return err
	}
	if proof == nil || proof.ClientID != clientID {
		return domain.ErrNotFound
	}
	return uc.proofRepo.Delete(proofID)
}
