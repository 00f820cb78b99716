package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/msdharani1/portfolio-api/internal/contact/domain"
)

// ArchiveRepository keeps an audit trail of contact submissions in Postgres.
// The archive is best-effort: the relay outcome decides what the user sees.
type ArchiveRepository struct {
	db *pgxpool.Pool
}

func NewArchiveRepository(db *pgxpool.Pool) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// Save records one submission with its relay outcome.
func (r *ArchiveRepository) Save(ctx context.Context, msg domain.Message, delivered bool) (string, error) {
	id := uuid.New().String()

	const q = `
INSERT INTO contact_messages (id, name, email, message, delivered, created_at)
VALUES ($1, $2, $3, $4, $5, $6);
`
	_, err := r.db.Exec(ctx, q, id, msg.Name, msg.Email, msg.Message, delivered, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("archive contact message: %w", err)
	}
	return id, nil
}

// Recent returns the latest submissions, newest first.
func (r *ArchiveRepository) Recent(ctx context.Context, limit int) ([]ArchivedMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	const q = `
SELECT id, name, email, message, delivered, created_at
FROM contact_messages
ORDER BY created_at DESC
LIMIT $1;
`
	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]ArchivedMessage, 0, limit)
	for rows.Next() {
		var m ArchivedMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Delivered, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ArchivedMessage is a stored submission plus its relay outcome.
type ArchivedMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Delivered bool      `json:"delivered"`
	CreatedAt time.Time `json:"created_at"`
}
