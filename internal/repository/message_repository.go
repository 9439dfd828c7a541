package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitrokit/ventures-api/internal/domain"
)

// MessageRepository persists contact form submissions.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	List(ctx context.Context) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type messageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository returns a Postgres-backed implementation.
func NewMessageRepository(pool *pgxpool.Pool) MessageRepository {
	return &messageRepository{pool: pool}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	const query = `
        INSERT INTO messages (id, name, email, subject, content)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Content,
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) List(ctx context.Context) ([]*domain.Message, error) {
	const query = `
        SELECT id, name, email, subject, content, read, archived, created_at
        FROM messages ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Subject,
			&message.Content,
			&message.Read,
			&message.Archived,
			&message.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &message)
	}
	return messages, rows.Err()
}

func (r *messageRepository) MarkRead(ctx context.Context, id string) error {
	const query = `UPDATE messages SET read=TRUE WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *messageRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM messages`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
