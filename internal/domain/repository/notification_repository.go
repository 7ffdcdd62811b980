package repository

import "github.com/tu-usuario/crm-closers/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	// ListByUser devuelve las notificaciones del usuario, created_at desc.
	ListByUser(userID string) ([]*entity.Notification, error)
	// MarkRead pone is_read en true; idempotente sobre notificaciones ya leídas.
	MarkRead(id string) error
	Delete(id string) error
}
