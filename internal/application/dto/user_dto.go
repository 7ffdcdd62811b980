package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary datos públicos mínimos del usuario (respuesta de login).
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// RegisterRequest entrada para registrar un usuario (solo ADMIN).
// Objective aplica a CLOSER; GroupObjective a ADMIN. El password se hashea
// en el caso de uso, nunca se persiste plano.
type RegisterRequest struct {
	Email          string           `json:"email" validate:"required,email"`
	Password       string           `json:"password" validate:"required,min=8"`
	Name           string           `json:"name" validate:"required,max=200"`
	Role           string           `json:"role" validate:"required,oneof=ADMIN CLOSER"`
	Objective      *decimal.Decimal `json:"objective,omitempty"`
	GroupObjective *decimal.Decimal `json:"groupObjective,omitempty"`
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// ProfileResponse perfil completo del usuario autenticado (sin hash).
type ProfileResponse struct {
	ID                   string           `json:"id"`
	Email                string           `json:"email"`
	Name                 string           `json:"name"`
	Role                 string           `json:"role"`
	Objective            decimal.Decimal  `json:"objective"`
	Achieved             decimal.Decimal  `json:"achieved"`
	PercentComplete      decimal.Decimal  `json:"percentComplete"`
	GroupObjective       *decimal.Decimal `json:"groupObjective"`
	GroupAchieved        decimal.Decimal  `json:"groupAchieved"`
	GroupPercentComplete decimal.Decimal  `json:"groupPercentComplete"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

// ToProfileResponse mapea la entidad al perfil expuesto.
func ToProfileResponse(u *entity.User) *ProfileResponse {
	if u == nil {
		return nil
	}
	var groupObjective *decimal.Decimal
	if u.GroupObjective.Valid {
		v := u.GroupObjective.Decimal
		groupObjective = &v
	}
	return &ProfileResponse{
		ID:                   u.ID,
		Email:                u.Email,
		Name:                 u.Name,
		Role:                 u.Role,
		Objective:            u.Objective,
		Achieved:             u.Achieved,
		PercentComplete:      u.PercentComplete,
		GroupObjective:       groupObjective,
		GroupAchieved:        u.GroupAchieved,
		GroupPercentComplete: u.GroupPercent,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}

// ChangePasswordRequest entrada para cambiar la propia contraseña.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ObjectiveRequest entrada para fijar el objetivo de un Closer.
type ObjectiveRequest struct {
	Objective decimal.Decimal `json:"objective"`
}

// AchievementRequest entrada para sumar un monto al avance de un Closer.
type AchievementRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CloserSummary vista de un Closer con sus métricas (listado de ADMIN).
type CloserSummary struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Objective       decimal.Decimal `json:"objective"`
	Achieved        decimal.Decimal `json:"achieved"`
	PercentComplete decimal.Decimal `json:"percentComplete"`
}

// ToCloserSummary mapea la entidad a la vista de métricas.
func ToCloserSummary(u *entity.User) CloserSummary {
	return CloserSummary{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Objective:       u.Objective,
		Achieved:        u.Achieved,
		PercentComplete: u.PercentComplete,
	}
}
