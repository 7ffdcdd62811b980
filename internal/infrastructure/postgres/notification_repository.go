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

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Create persiste una nueva notificación (no leída).
func (r *NotificationRepo) Create(notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		notification.ID, notification.UserID, notification.Message,
		notification.IsRead, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT id, user_id, message, is_read, created_at FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// ListByUser lista las notificaciones del usuario, created_at desc.
func (r *NotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, message, is_read, created_at
		FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead pone is_read en true. Idempotente: marcar dos veces deja true sin error.
func (r *NotificationRepo) MarkRead(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// Delete elimina una notificación por ID.
func (r *NotificationRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
