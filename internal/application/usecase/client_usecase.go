package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/domain"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
)

// ClientUseCase casos de uso del registro de clientes. La política de
// autorización es la misma en cada operación sobre un cliente concreto:
// buscar -> NotFound si no existe -> Forbidden si un CLOSER no es el dueño
// -> ADMIN pasa siempre (domain.CanAccess).
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	proofRepo   repository.PaymentProofRepository
	meetingRepo repository.MeetingRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, proofRepo repository.PaymentProofRepository, meetingRepo repository.MeetingRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, proofRepo: proofRepo, meetingRepo: meetingRepo}
}

// findAccessible centraliza el patrón buscar + autorizar por dueño.
func (uc *ClientUseCase) findAccessible(id domain.Identity, clientID string) (*entity.Client, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.CanAccess(id, client.CloserID) {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

// Create da de alta un cliente asignado al Closer autenticado. El status
// ausente cae en PAGO_PENDIENTE; uno fuera del enum es entrada inválida.
func (uc *ClientUseCase) Create(closerID string, in dto.CreateClientRequest) (*dto.CreateClientResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPagoPendiente
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		Name:        in.Name,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		CloserID:    closerID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return &dto.CreateClientResponse{ClientID: client.ID, Message: "cliente creado correctamente"}, nil
}

// GetDetail arma la vista completa del cliente: una consulta por colección
// relacionada (formulario, comprobantes uploaded_at desc, reuniones
// meeting_date desc). Sin transacción: es una lectura best-effort.
func (uc *ClientUseCase) GetDetail(id domain.Identity, clientID string) (*dto.ClientDetailResponse, error) {
	client, err := uc.findAccessible(id, clientID)
	if err != nil {
		return nil, err
	}
	form, err := uc.clientRepo.GetFormByClient(clientID)
	if err != nil {
		return nil, err
	}
	proofs, err := uc.proofRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	meetings, err := uc.meetingRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}

	detail := &dto.ClientDetailResponse{
		ClientResponse: dto.ToClientResponse(client),
		PaymentProofs:  make([]dto.PaymentProofResponse, 0, len(proofs)),
		Meetings:       make([]dto.MeetingResponse, 0, len(meetings)),
	}
	if form != nil {
		detail.Form = &dto.ClientFormResponse{
			ID:          form.ID,
			FormData:    json.RawMessage(form.FormData),
			SubmittedAt: form.SubmittedAt,
		}
	}
	for _, p := range proofs {
		detail.PaymentProofs = append(detail.PaymentProofs, dto.ToPaymentProofResponse(p))
	}
	for _, m := range meetings {
		detail.Meetings = append(detail.Meetings, dto.ToMeetingResponse(&m.Meeting))
	}
	return detail, nil
}

// SetStatus cambia el estado del cliente (dueño o ADMIN).
func (uc *ClientUseCase) SetStatus(id domain.Identity, clientID, status string) error {
	if !entity.ValidStatus(status) {
		return domain.ErrInvalidInput
	}
	if _, err := uc.findAccessible(id, clientID); err != nil {
		return err
	}
	return uc.clientRepo.UpdateStatus(clientID, status)
}

// Reassign transfiere el cliente a otro Closer. Solo ADMIN (boundary).
// No se valida que newCloserID exista: hueco aceptado del contrato original.
func (uc *ClientUseCase) Reassign(clientID, newCloserID string) error {
	if newCloserID == "" {
		return domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Reassign(clientID, newCloserID)
}

// Delete elimina el cliente (solo ADMIN, boundary). El cascade de
// formulario/comprobantes y el SET NULL de reuniones son reglas de FK.
func (uc *ClientUseCase) Delete(clientID string) error {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(clientID)
}
