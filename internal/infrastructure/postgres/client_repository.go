package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

// Create persiste un nuevo cliente asignado a un Closer.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, company_name, email, closer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		client.ID, client.Name, nullIfEmpty(client.CompanyName), client.Email,
		client.CloserID, client.Status, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, name, coalesce(company_name, ''), email, closer_id, status, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.CompanyName, &c.Email, &c.CloserID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetFormByClient devuelve el formulario asociado (1:1), o nil si no existe.
func (r *ClientRepo) GetFormByClient(clientID string) (*entity.ClientForm, error) {
	query := `
		SELECT id, client_id, form_data, submitted_at
		FROM client_forms WHERE client_id = $1`
	var f entity.ClientForm
	err := r.pool.QueryRow(context.Background(), query, clientID).Scan(
		&f.ID, &f.ClientID, &f.FormData, &f.SubmittedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client form: %w", err)
	}
	return &f, nil
}

// ListByCloser lista los clientes de un Closer, del más reciente al más viejo.
func (r *ClientRepo) ListByCloser(closerID string) ([]*entity.Client, error) {
	query := `
		SELECT id, name, coalesce(company_name, ''), email, closer_id, status, created_at, updated_at
		FROM clients WHERE closer_id = $1 ORDER BY updated_at DESC`
	rows, err := r.pool.Query(context.Background(), query, closerID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CompanyName, &c.Email, &c.CloserID, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del cliente y refresca updated_at.
func (r *ClientRepo) UpdateStatus(id, status string) error {
	query := `UPDATE clients SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update client status: %w", err)
	}
	return nil
}

// Reassign cambia el Closer dueño del cliente.
func (r *ClientRepo) Reassign(id, newCloserID string) error {
	query := `UPDATE clients SET closer_id = $2, updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, newCloserID)
	if err != nil {
		return fmt.Errorf("reassign client: %w", err)
	}
	return nil
}

// Delete elimina el cliente. Las FKs hacen el resto: CASCADE en client_forms
// y payment_proofs, SET NULL en meetings.client_id.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// nullIfEmpty mapea "" a NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
