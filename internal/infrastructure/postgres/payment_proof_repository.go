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

var _ repository.PaymentProofRepository = (*PaymentProofRepo)(nil)

// PaymentProofRepo implementación de PaymentProofRepository sobre PostgreSQL.
type PaymentProofRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentProofRepository construye el adaptador de persistencia para comprobantes.
func NewPaymentProofRepository(pool *pgxpool.Pool) *PaymentProofRepo {
	return &PaymentProofRepo{pool: pool}
}

// Create persiste un nuevo comprobante de pago.
func (r *PaymentProofRepo) Create(proof *entity.PaymentProof) error {
	query := `
		INSERT INTO payment_proofs (id, client_id, file_url, uploaded_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		proof.ID, proof.ClientID, proof.FileURL, proof.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment proof: %w", err)
	}
	return nil
}

// GetByID obtiene un comprobante por ID.
func (r *PaymentProofRepo) GetByID(id string) (*entity.PaymentProof, error) {
	query := `SELECT id, client_id, file_url, uploaded_at FROM payment_proofs WHERE id = $1`
	var p entity.PaymentProof
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClientID, &p.FileURL, &p.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment proof: %w", err)
	}
	return &p, nil
}

// ListByClient lista los comprobantes de un cliente, uploaded_at desc.
func (r *PaymentProofRepo) ListByClient(clientID string) ([]*entity.PaymentProof, error) {
	query := `
		SELECT id, client_id, file_url, uploaded_at
		FROM payment_proofs WHERE client_id = $1 ORDER BY uploaded_at DESC`
	rows, err := r.pool.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list payment proofs: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentProof
	for rows.Next() {
		var p entity.PaymentProof
		if err := rows.Scan(&p.ID, &p.ClientID, &p.FileURL, &p.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan payment proof: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un comprobante por ID.
func (r *PaymentProofRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM payment_proofs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment proof: %w", err)
	}
	return nil
}
