package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin  = "ADMIN"
	RoleCloser = "CLOSER"
)

// ValidRole indica si el rol es uno de los dos reconocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCloser
}

// User representa un usuario del sistema: un ADMIN o un CLOSER.
// Los campos Objective/Achieved/PercentComplete solo aplican a Closers;
// los campos Group* solo a Admins (agregados del equipo).
// Invariante: PercentComplete = round(Achieved/Objective*100, 2) y 0 cuando
// Objective es 0. Se recalcula en cada mutación de Achieved u Objective.
type User struct {
	ID              string
	Email           string
	Name            string
	Role            string // ADMIN, CLOSER
	PasswordHash    string // bcrypt hash, nunca plano en dominio después de persistir
	Objective       decimal.Decimal
	Achieved        decimal.Decimal
	PercentComplete decimal.Decimal
	GroupObjective  decimal.NullDecimal // NULL para Closers
	GroupAchieved   decimal.Decimal
	GroupPercent    decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ComputePercent aplica la política de redondeo del sistema:
// achieved/objective*100 con dos decimales, 0 si objective es 0.
func ComputePercent(achieved, objective decimal.Decimal) decimal.Decimal {
	if objective.IsZero() {
		return decimal.Zero
	}
	return achieved.Div(objective).Mul(decimal.NewFromInt(100)).Round(2)
}
