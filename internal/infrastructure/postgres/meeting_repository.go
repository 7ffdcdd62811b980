package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/crm-closers/internal/domain/entity"
	"github.com/tu-usuario/crm-closers/internal/domain/repository"
)

var _ repository.MeetingRepository = (*MeetingRepo)(nil)

// MeetingRepo implementación de MeetingRepository sobre PostgreSQL.
type MeetingRepo struct {
	pool *pgxpool.Pool
}

// NewMeetingRepository construye el adaptador de persistencia para reuniones.
func NewMeetingRepository(pool *pgxpool.Pool) *MeetingRepo {
	return &MeetingRepo{pool: pool}
}

// Create persiste una nueva reunión.
func (r *MeetingRepo) Create(meeting *entity.Meeting) error {
	query := `
		INSERT INTO meetings (id, closer_id, client_id, meeting_date, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		meeting.ID, meeting.CloserID, meeting.ClientID, meeting.MeetingDate,
		nullIfEmpty(meeting.Location), nullIfEmpty(meeting.Notes),
		meeting.CreatedAt, meeting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert meeting: %w", err)
	}
	return nil
}

// GetByID devuelve la reunión con los datos del Closer y del Client si hay.
func (r *MeetingRepo) GetByID(id string) (*entity.MeetingDetail, error) {
	query := `
		SELECT m.id, m.closer_id, m.client_id, m.meeting_date,
		       coalesce(m.location, ''), coalesce(m.notes, ''),
		       m.created_at, m.updated_at,
		       u.name, u.email,
		       coalesce(c.name, ''), coalesce(c.email, '')
		FROM meetings m
		JOIN users u ON m.closer_id = u.id
		LEFT JOIN clients c ON m.client_id = c.id
		WHERE m.id = $1`
	var d entity.MeetingDetail
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.CloserID, &d.ClientID, &d.MeetingDate,
		&d.Location, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
		&d.CloserName, &d.CloserEmail, &d.ClientName, &d.ClientEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	return &d, nil
}

// ListByCloser lista las reuniones de un Closer, meeting_date desc.
func (r *MeetingRepo) ListByCloser(closerID string) ([]*entity.Meeting, error) {
	query := `
		SELECT id, closer_id, client_id, meeting_date,
		       coalesce(location, ''), coalesce(notes, ''), created_at, updated_at
		FROM meetings WHERE closer_id = $1 ORDER BY meeting_date DESC`
	rows, err := r.pool.Query(context.Background(), query, closerID)
	if err != nil {
		return nil, fmt.Errorf("list meetings by closer: %w", err)
	}
	defer rows.Close()
	var list []*entity.Meeting
	for rows.Next() {
		var m entity.Meeting
		if err := rows.Scan(&m.ID, &m.CloserID, &m.ClientID, &m.MeetingDate,
			&m.Location, &m.Notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByClient lista todas las reuniones de un cliente con info del Closer.
func (r *MeetingRepo) ListByClient(clientID string) ([]*entity.MeetingDetail, error) {
	query := `
		SELECT m.id, m.closer_id, m.client_id, m.meeting_date,
		       coalesce(m.location, ''), coalesce(m.notes, ''),
		       m.created_at, m.updated_at,
		       u.name, u.email
		FROM meetings m
		JOIN users u ON m.closer_id = u.id
		WHERE m.client_id = $1
		ORDER BY m.meeting_date DESC`
	rows, err := r.pool.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list meetings by client: %w", err)
	}
	defer rows.Close()
	var list []*entity.MeetingDetail
	for rows.Next() {
		var d entity.MeetingDetail
		if err := rows.Scan(&d.ID, &d.CloserID, &d.ClientID, &d.MeetingDate,
			&d.Location, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
			&d.CloserName, &d.CloserEmail); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update arma el SET dinámicamente con los campos presentes, como el
// contrato parcial exige: un campo ausente no se toca, y client_id puede
// fijarse explícitamente en NULL.
func (r *MeetingRepo) Update(id string, upd entity.MeetingUpdate) error {
	if upd.Empty() {
		return nil
	}
	sets := make([]string, 0, 4)
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	if upd.MeetingDate != nil {
		add("meeting_date", *upd.MeetingDate)
	}
	if upd.SetClient {
		add("client_id", upd.ClientID)
	}
	if upd.Location != nil {
		add("location", nullIfEmpty(*upd.Location))
	}
	if upd.Notes != nil {
		add("notes", nullIfEmpty(*upd.Notes))
	}
	query := `UPDATE meetings SET ` + strings.Join(sets, ", ") + `, updated_at = now() WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("update meeting: %w", err)
	}
	return nil
}

// Delete elimina una reunión por ID.
func (r *MeetingRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	return nil
}
