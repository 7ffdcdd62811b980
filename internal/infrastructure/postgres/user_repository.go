package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-closers/internal/domain"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, name, role, password_hash, objective, achieved, percent_complete,
		group_objective, group_achieved, group_percent_complete, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash,
		&u.Objective, &u.Achieved, &u.PercentComplete,
		&u.GroupObjective, &u.GroupAchieved, &u.GroupPercent,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users
			(id, email, name, role, password_hash, objective, achieved, percent_complete,
			 group_objective, group_achieved, group_percent_complete, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.Name, user.Role, user.PasswordHash,
		user.Objective, user.Achieved, user.PercentComplete,
		user.GroupObjective, user.GroupAchieved, user.GroupPercent,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// UpdatePassword actualiza el hash de contraseña de un usuario.
func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// SetObjective fija el objetivo de un CLOSER. El percent_complete se
// recalcula en el mismo UPDATE para que nunca quede derivado de un objetivo
// viejo, incluso con objetivos concurrentes.
func (r *UserRepo) SetObjective(id string, objective decimal.Decimal) error {
	query := `
		UPDATE users
		SET objective = $2,
		    percent_complete = CASE WHEN $2 = 0 THEN 0
		                            ELSE round(achieved / $2 * 100, 2) END,
		    updated_at = now()
		WHERE id = $1 AND role = 'CLOSER'`
	_, err := r.pool.Exec(context.Background(), query, id, objective)
	if err != nil {
		return fmt.Errorf("set objective: %w", err)
	}
	return nil
}

// AddAchievement suma amount a achieved con el cómputo en el servidor:
// dos incrementos concurrentes sobre la misma fila se serializan en el
// storage y ninguno se pierde. Silenciosamente no hace nada si el usuario
// no existe o no es CLOSER.
func (r *UserRepo) AddAchievement(id string, amount decimal.Decimal) error {
	query := `
		UPDATE users
		SET achieved = achieved + $2,
		    percent_complete = CASE WHEN objective = 0 THEN 0
		                            ELSE round((achieved + $2) / objective * 100, 2) END,
		    updated_at = now()
		WHERE id = $1 AND role = 'CLOSER'`
	_, err := r.pool.Exec(context.Background(), query, id, amount)
	if err != nil {
		return fmt.Errorf("add achievement: %w", err)
	}
	return nil
}

// ListClosers devuelve todos los usuarios con rol CLOSER y sus métricas.
func (r *UserRepo) ListClosers() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = 'CLOSER' ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list closers: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash,
			&u.Objective, &u.Achieved, &u.PercentComplete,
			&u.GroupObjective, &u.GroupAchieved, &u.GroupPercent,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan closer: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
