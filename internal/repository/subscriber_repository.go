package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitrokit/ventures-api/internal/domain"
)

// SubscriberRepository persists newsletter subscriptions.
type SubscriberRepository interface {
	Upsert(ctx context.Context, subscriber *domain.Subscriber) error
	List(ctx context.Context) ([]*domain.Subscriber, error)
	Count(ctx context.Context) (int, error)
}

type subscriberRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriberRepository returns a Postgres-backed implementation.
func NewSubscriberRepository(pool *pgxpool.Pool) SubscriberRepository {
	return &subscriberRepository{pool: pool}
}

func (r *subscriberRepository) Upsert(ctx context.Context, subscriber *domain.Subscriber) error {
	const query = `
        INSERT INTO subscribers (id, email, name, active)
        VALUES ($1, $2, $3, TRUE)
        ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name, active=TRUE
        RETURNING id, subscribed_at`

	return r.pool.QueryRow(ctx, query,
		subscriber.ID,
		subscriber.Email,
		subscriber.Name,
	).Scan(&subscriber.ID, &subscriber.SubscribedAt)
}

func (r *subscriberRepository) List(ctx context.Context) ([]*domain.Subscriber, error) {
	const query = `
        SELECT id, email, name, active, subscribed_at
        FROM subscribers ORDER BY subscribed_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []*domain.Subscriber
	for rows.Next() {
		var subscriber domain.Subscriber
		if err := rows.Scan(
			&subscriber.ID,
			&subscriber.Email,
			&subscriber.Name,
			&subscriber.Active,
			&subscriber.SubscribedAt,
		); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, &subscriber)
	}
	return subscribers, rows.Err()
}

func (r *subscriberRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM subscribers WHERE active`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
