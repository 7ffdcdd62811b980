package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las consultas devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
	// SetObjective fija el objetivo de un CLOSER y recalcula percent_complete
	// dentro del mismo UPDATE (0 si el objetivo es 0).
	SetObjective(id string, objective decimal.Decimal) error
	// AddAchievement suma amount a achieved de forma atómica (cómputo en el
	// servidor) y recalcula percent_complete en el mismo statement.
	// No hace nada si el id no existe o no es un CLOSER.
	AddAchievement(id string, amount decimal.Decimal) error
	// ListClosers devuelve todos los usuarios con rol CLOSER y sus métricas.
	ListClosers() ([]*entity.User, error)
}
