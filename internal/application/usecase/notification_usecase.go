package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/domain"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
)

// NotificationUseCase casos de uso del buzón de notificaciones.
// Marcar como leída y eliminar exigen ser el destinatario o ADMIN.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

// Send crea una notificación para un usuario (solo ADMIN, boundary).
func (uc *NotificationUseCase) Send(in dto.SendNotificationRequest) (*dto.SendNotificationResponse, error) {
	if in.UserID == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		Message:   in.Message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := uc.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return &dto.SendNotificationResponse{NotificationID: notification.ID, Message: "notificación enviada"}, nil
}

// ListForUser devuelve las notificaciones del usuario autenticado, más
// recientes primero.
func (uc *NotificationUseCase) ListForUser(userID string) ([]dto.NotificationResponse, error) {
	notifications, err := uc.notificationRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.ToNotificationResponse(n))
	}
	return out, nil
}

// findAccessible busca la notificación y exige destinatario-o-ADMIN.
func (uc *NotificationUseCase) findAccessible(id domain.Identity, notificationID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.CanAccess(id, notification.UserID) {
		return nil, domain.ErrForbidden
	}
	return notification, nil
}

// MarkRead marca la notificación como leída. Idempotente: repetir la
// llamada deja is_read en true sin error.
func (uc *NotificationUseCase) MarkRead(id domain.Identity, notificationID string) error {
	if _, err := uc.findAccessible(id, notificationID); err != nil {
		return err
	}
	return uc.notificationRepo.MarkRead(notificationID)
}

// Delete elimina la notificación (destinatario o ADMIN).
func (uc *NotificationUseCase) Delete(id domain.Identity, notificationID string) error {
	if _, err := uc.findAccessible(id, notificationID); err != nil {
		return err
	}
	return uc.notificationRepo.Delete(notificationID)
}
