package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/application/usecase"
)

// NotificationHandler maneja el buzón de notificaciones.
type NotificationHandler struct {
	notificationUC *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(notificationUC *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// Send POST /api/notifications (solo ADMIN)
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var in dto.SendNotificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.notificationUC.Send(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine GET /api/notifications (las del usuario autenticado)
func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.notificationUC.ListForUser(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkRead PUT /api/notifications/:id/read (destinatario o ADMIN)
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notificationUC.MarkRead(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "notificación marcada como leída"})
}

// Delete DELETE /api/notifications/:id (destinatario o ADMIN)
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.notificationUC.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "notificación eliminada"})
}
