package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/application/usecase"
)

// ClientHandler maneja el registro de clientes y sus comprobantes de pago
// (los comprobantes cuelgan de /clients/:id en el contrato original).
type ClientHandler struct {
	clientUC  *usecase.ClientUseCase
	paymentUC *usecase.PaymentUseCase
}

// NewClientHandler construye el handler de clientes.
func NewClientHandler(clientUC *usecase.ClientUseCase, paymentUC *usecase.PaymentUseCase) *ClientHandler {
	return &ClientHandler{clientUC: clientUC, paymentUC: paymentUC}
}

// Create POST /api/clients (solo CLOSER; el dueño sale del token)
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.clientUC.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDetail GET /api/clients/:id (dueño o ADMIN)
func (h *ClientHandler) GetDetail(c *fiber.Ctx) error {
	out, err := h.clientUC.GetDetail(GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetStatus PUT /api/clients/:id/status (dueño o ADMIN)
func (h *ClientHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.clientUC.SetStatus(GetIdentity(c), c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado del cliente actualizado"})
}

// Reassign PUT /api/clients/:id/reassign (solo ADMIN)
func (h *ClientHandler) Reassign(c *fiber.Ctx) error {
	var in dto.ReassignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.clientUC.Reassign(c.Params("id"), in.NewCloserID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente reasignado correctamente"})
}

// Delete DELETE /api/clients/:id (solo ADMIN)
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.clientUC.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado correctamente"})
}

// UploadProof POST /api/clients/:id/payment-proof (dueño o ADMIN)
// multipart/form-data con campo 'file'.
func (h *ClientHandler) UploadProof(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		// Sin archivo: el caso de uso decide 404/403 sobre el cliente antes
		// de reportar la falta del archivo, igual que el contrato original.
		out, upErr := h.paymentUC.Upload(GetIdentity(c), c.Params("id"), "", nil)
		if upErr != nil {
			return respondError(c, upErr)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()
	out, err := h.paymentUC.Upload(GetIdentity(c), c.Params("id"), fileHeader.Filename, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProofs GET /api/clients/:id/payment-proofs (dueño o ADMIN)
func (h *ClientHandler) ListProofs(c *fiber.Ctx) error {
	out, err := h.paymentUC.ListForClient(GetIdentity(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteProof DELETE /api/clients/:id/payment-proofs/:proofId (dueño o ADMIN)
func (h *ClientHandler) DeleteProof(c *fiber.Ctx) error {
	if err := h.paymentUC.Delete(GetIdentity(c), c.Params("id"), c.Params("proofId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "comprobante eliminado correctamente"})
}
