package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/application/usecase"
)

// MeetingHandler maneja la agenda de reuniones.
type MeetingHandler struct {
	meetingUC *usecase.MeetingUseCase
}

// NewMeetingHandler construye el handler de reuniones.
func NewMeetingHandler(meetingUC *usecase.MeetingUseCase) *MeetingHandler {
	return &MeetingHandler{meetingUC: meetingUC}
}

// Schedule POST /api/meetings (el Closer sale del token)
func (h *MeetingHandler) Schedule(c *fiber.Ctx) error {
	var in dto.ScheduleMeetingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.meetingUC.Schedule(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListForCloser GET /api/meetings/closer (las del usuario autenticado)
func (h *MeetingHandler) ListForCloser(c *fiber.Ctx) error {
	out, err := h.meetingUC.ListForCloser(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListForClient GET /api/meetings/client/:clientId
func (h *MeetingHandler) ListForClient(c *fiber.Ctx) error {
	out, err := h.meetingUC.ListForClient(GetIdentity(c), c.Params("clientId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDetail GET /api/meetings/:id (dueño o ADMIN)
func (h *MeetingHandler) GetDetail(c *fiber.Ctx) error {
	out, err := h.meetingUC.GetDetail(GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/meetings/:id (parcial; dueño o ADMIN)
func (h *MeetingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMeetingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.meetingUC.Update(GetIdentity(c), c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "reunión actualizada correctamente"})
}

// Delete DELETE /api/meetings/:id (dueño o ADMIN)
func (h *MeetingHandler) Delete(c *fiber.Ctx) error {
	if err := h.meetingUC.Delete(GetIdentity(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "reunión eliminada correctamente"})
}
