package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/tu-usuario/crm-closers/internal/domain/entity"
)

// ScheduleMeetingRequest entrada para agendar una reunión. ClientID nil
// (o ausente) crea una reunión de prospección sin cliente.
type ScheduleMeetingRequest struct {
	ClientID    *string   `json:"clientId,omitempty"`
	MeetingDate time.Time `json:"meetingDate" validate:"required"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// ScheduleMeetingResponse salida del agendamiento.
type ScheduleMeetingResponse struct {
	MeetingID string `json:"meetingId"`
	Message   string `json:"message"`
}

// MeetingResponse vista de una reunión.
type MeetingResponse struct {
	ID          string    `json:"id"`
	CloserID    string    `json:"closerId"`
	ClientID    *string   `json:"clientId"`
	MeetingDate time.Time `json:"meetingDate"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToMeetingResponse mapea la entidad a la vista.
func ToMeetingResponse(m *entity.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:          m.ID,
		CloserID:    m.CloserID,
		ClientID:    m.ClientID,
		MeetingDate: m.MeetingDate,
		Location:    m.Location,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MeetingDetailResponse reunión con los datos del Closer y del Client si hay.
type MeetingDetailResponse struct {
	MeetingResponse
	CloserName  string `json:"closerName"`
	CloserEmail string `json:"closerEmail"`
	ClientName  string `json:"clientName,omitempty"`
	ClientEmail string `json:"clientEmail,omitempty"`
}

// ToMeetingDetailResponse mapea la vista JOIN a la respuesta.
func ToMeetingDetailResponse(d *entity.MeetingDetail) MeetingDetailResponse {
	return MeetingDetailResponse{
		MeetingResponse: ToMeetingResponse(&d.Meeting),
		CloserName:      d.CloserName,
		CloserEmail:     d.CloserEmail,
		ClientName:      d.ClientName,
		ClientEmail:     d.ClientEmail,
	}
}

// OptionalClientID distingue "clave ausente" de "clientId": null". Ausente
// no toca el vínculo; null explícito lo limpia; un string lo reasigna.
type OptionalClientID struct {
	Set   bool
	Value *string
}

// UnmarshalJSON solo se invoca cuando la clave está presente en el body,
// lo que nos da la semántica de presencia sin depender de "truthiness".
func (o *OptionalClientID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// UpdateMeetingRequest actualización parcial: cada campo se aplica solo si
// vino en el body. ClientID usa el wrapper de presencia explícita.
type UpdateMeetingRequest struct {
	MeetingDate *time.Time       `json:"meetingDate"`
	Location    *string          `json:"location"`
	Notes       *string          `json:"notes"`
	ClientID    OptionalClientID `json:"clientId"`
}

// ToMeetingUpdate traduce la petición al comando de persistencia.
func (r UpdateMeetingRequest) ToMeetingUpdate() entity.MeetingUpdate {
	return entity.MeetingUpdate{
		MeetingDate: r.MeetingDate,
		Location:    r.Location,
		Notes:       r.Notes,
		SetClient:   r.ClientID.Set,
		ClientID:    r.ClientID.Value,
	}
}
