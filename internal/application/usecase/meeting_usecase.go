package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/domain"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
)

// MeetingUseCase casos de uso de reuniones. Una reunión pertenece siempre a
// un Closer y opcionalmente a un Client (reunión de prospección si no).
type MeetingUseCase struct {
	meetingRepo repository.MeetingRepository
}

// NewMeetingUseCase construye el caso de uso.
func NewMeetingUseCase(meetingRepo repository.MeetingRepository) *MeetingUseCase {
	return &MeetingUseCase{meetingRepo: meetingRepo}
}

// findAccessible busca la reunión y aplica la política dueño-o-ADMIN.
func (uc *MeetingUseCase) findAccessible(id domain.Identity, meetingID string) (*entity.MeetingDetail, error) {
	meeting, err := uc.meetingRepo.GetByID(meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.CanAccess(id, meeting.CloserID) {
		return nil, domain.ErrForbidden
	}
	return meeting, nil
}

// Schedule agenda una reunión para el usuario autenticado.
func (uc *MeetingUseCase) Schedule(closerID string, in dto.ScheduleMeetingRequest) (*dto.ScheduleMeetingResponse, error) {
	if in.MeetingDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	meeting := &entity.Meeting{
		ID:          uuid.New().String(),
		CloserID:    closerID,
		ClientID:    in.ClientID,
		MeetingDate: in.MeetingDate,
		Location:    in.Location,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.meetingRepo.Create(meeting); err != nil {
		return nil, err
	}
	return &dto.ScheduleMeetingResponse{MeetingID: meeting.ID, Message: "reunión creada correctamente"}, nil
}

// GetDetail devuelve la reunión con Closer y Client (dueño o ADMIN).
func (uc *MeetingUseCase) GetDetail(id domain.Identity, meetingID string) (*dto.MeetingDetailResponse, error) {
	meeting, err := uc.findAccessible(id, meetingID)
	if err != nil {
		return nil, err
	}
	out := dto.ToMeetingDetailResponse(meeting)
	return &out, nil
}

// ListForCloser devuelve las reuniones del Closer autenticado.
func (uc *MeetingUseCase) ListForCloser(closerID string) ([]dto.MeetingDetailResponse, error) {
	meetings, err := uc.meetingRepo.ListByCloser(closerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeetingDetailResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, dto.MeetingDetailResponse{MeetingResponse: dto.ToMeetingResponse(m)})
	}
	return out, nil
}

// ListForClient devuelve las reuniones de un cliente. La consulta trae
// todas y, si el que pide es CLOSER, se filtran después a las propias:
// la autorización es post-filtro, no a nivel de query.
func (uc *MeetingUseCase) ListForClient(id domain.Identity, clientID string) ([]dto.MeetingDetailResponse, error) {
	meetings, err := uc.meetingRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeetingDetailResponse, 0, len(meetings))
	for _, m := range meetings {
		if !domain.CanAccess(id, m.CloserID) {
			continue
		}
		out = append(out, dto.ToMeetingDetailResponse(m))
	}
	return out, nil
}

// Update aplica una actualización parcial (dueño o ADMIN). Cada campo se
// toca solo si vino en el body; clientId presente con null explícito
// desvincula la reunión del cliente.
func (uc *MeetingUseCase) Update(id domain.Identity, meetingID string, in dto.UpdateMeetingRequest) error {
	if _, err := uc.findAccessible(id, meetingID); err != nil {
		return err
	}
	return uc.meetingRepo.Update(meetingID, in.ToMeetingUpdate())
}

// Delete elimina la reunión (dueño o ADMIN).
func (uc *MeetingUseCase) Delete(id domain.Identity, meetingID string) error {
	if _, err := uc.findAccessible(id, meetingID); err != nil {
		return err
	}
	return uc.meetingRepo.Delete(meetingID)
}
