package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-closers/internal/application/auth"
	"github.com/tu-usuario/crm-closers/internal/application/dto"
	"github.com/tu-usuario/crm-closers/internal/application/usecase"
)

// UserHandler maneja login, registro, perfil y la contabilidad de Closers.
type UserHandler struct {
	authUC *auth.AuthUseCase
	userUC *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(authUC *auth.AuthUseCase, userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{authUC: authUC, userUC: userUC}
}

// Login POST /api/users/login (público)
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.authUC.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Register POST /api/users/register (solo ADMIN)
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.userUC.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetProfile GET /api/users/profile
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.userUC.GetProfile(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword PUT /api/users/password
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.authUC.ChangePassword(GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada exitosamente"})
}

// SetObjective PUT /api/users/objective (solo CLOSER)
func (h *UserHandler) SetObjective(c *fiber.Ctx) error {
	var in dto.ObjectiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.userUC.SetObjective(GetUserID(c), in.Objective); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "objetivo actualizado"})
}

// AddAchievement POST /api/users/achievement (solo CLOSER)
func (h *UserHandler) AddAchievement(c *fiber.Ctx) error {
	var in dto.AchievementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.userUC.AddAchievement(GetUserID(c), in.Amount); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "avance actualizado"})
}

// ListClients GET /api/users/clients (solo CLOSER)
func (h *UserHandler) ListClients(c *fiber.Ctx) error {
	out, err := h.userUC.ListClients(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMeetings GET /api/users/meetings (solo CLOSER)
func (h *UserHandler) ListMeetings(c *fiber.Ctx) error {
	out, err := h.userUC.ListMeetings(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListClosers GET /api/users/closers (solo ADMIN)
func (h *UserHandler) ListClosers(c *fiber.Ctx) error {
	out, err := h.userUC.ListClosers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
