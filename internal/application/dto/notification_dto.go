package dto

import (
	"time"

	"github.com/tu-usuario/crm-closers/internal/domain/entity"
)

// SendNotificationRequest entrada para enviar una notificación (solo ADMIN).
type SendNotificationRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// SendNotificationResponse salida del envío.
type SendNotificationResponse struct {
	NotificationID string `json:"notificationId"`
	Message        string `json:"message"`
}

// NotificationResponse vista de una notificación.
type NotificationResponse struct {
	NotificationID string    `json:"notificationId"`
	Message        string    `json:"message"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse mapea la entidad a la vista.
func ToNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.ID,
		Message:        n.Message,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}
