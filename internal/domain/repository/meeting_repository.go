package repository

import "github.com/tu-usuario/crm-closers/internal/domain/entity"

// MeetingRepository define el puerto de persistencia para Meeting.
type MeetingRepository interface {
	Create(meeting *entity.Meeting) error
	// GetByID devuelve la reunión con los datos del Closer y del Client (si hay).
	GetByID(id string) (*entity.MeetingDetail, error)
	// ListByCloser devuelve las reuniones de un Closer, meeting_date desc.
	ListByCloser(closerID string) ([]*entity.Meeting, error)
	// ListByClient devuelve todas las reuniones de un cliente con info del
	// Closer, meeting_date desc. El filtrado por dueño lo hace el caso de uso.
	ListByClient(clientID string) ([]*entity.MeetingDetail, error)
	Update(id string, upd entity.MeetingUpdate) error
	Delete(id string) error
}
