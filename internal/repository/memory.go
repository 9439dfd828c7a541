package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mitrokit/ventures-api/internal/auth"
	"github.com/mitrokit/ventures-api/internal/domain"
)

// In-memory store implementations, selected at startup when no database is
// configured. All maps are mutex-guarded; not-found is reported as
// pgx.ErrNoRows so callers behave identically against either backend.

// DemoUsers returns the seeded demo identity set with passwords hashed at
// the given bcrypt cost.
func DemoUsers(cost int) ([]*domain.User, error) {
	seed := []struct {
		id       string
		email    string
		name     string
		role     domain.Role
		password string
	}{
		{"1", "admin@mitrokit.com", "Mwaki Denis", domain.RoleAdmin, "admin123"},
		{"2", "root@mitrokit.com", "Site Owner", domain.RoleSuperAdmin, "super123"},
		{"3", "demo@mitrokit.com", "Demo User", domain.RoleUser, "demo123"},
	}

	now := time.Now()
	users := make([]*domain.User, 0, len(seed))
	for _, s := range seed {
		hash, err := auth.HashPassword(s.password, cost)
		if err != nil {
			return nil, err
		}
		users = append(users, &domain.User{
			ID:           s.id,
			Email:        s.email,
			Name:         s.name,
			Role:         s.role,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return users, nil
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
}

// NewMemoryUserRepository builds an in-memory identity store from the given
// seed.
func NewMemoryUserRepository(seed []*domain.User) UserRepository {
	return &memoryUserRepository{users: seed}
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryUserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

type memoryMessageRepository struct {
	mu       sync.RWMutex
	messages []*domain.Message
}

// NewMemoryMessageRepository builds an in-memory message store.
func NewMemoryMessageRepository() MessageRepository {
	return &memoryMessageRepository{}
}

func (r *memoryMessageRepository) Create(_ context.Context, message *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *memoryMessageRepository) List(_ context.Context) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	messages := make([]*domain.Message, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		copied := *r.messages[i]
		messages = append(messages, &copied)
	}
	return messages, nil
}

func (r *memoryMessageRepository) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, message := range r.messages {
		if message.ID == id {
			message.Read = true
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *memoryMessageRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages), nil
}

type memorySubscriberRepository struct {
	mu          sync.RWMutex
	subscribers map[string]*domain.Subscriber
}

// NewMemorySubscriberRepository builds an in-memory subscriber store keyed
// by email.
func NewMemorySubscriberRepository() SubscriberRepository {
	return &memorySubscriberRepository{subscribers: make(map[string]*domain.Subscriber)}
}

func (r *memorySubscriberRepository) Upsert(_ context.Context, subscriber *domain.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.subscribers[subscriber.Email]; ok {
		existing.Name = subscriber.Name
		existing.Active = true
		*subscriber = *existing
		return nil
	}
	subscriber.Active = true
	if subscriber.SubscribedAt.IsZero() {
		subscriber.SubscribedAt = time.Now()
	}
	copied := *subscriber
	r.subscribers[subscriber.Email] = &copied
	return nil
}

func (r *memorySubscriberRepository) List(_ context.Context) ([]*domain.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subscribers := make([]*domain.Subscriber, 0, len(r.subscribers))
	for _, subscriber := range r.subscribers {
		copied := *subscriber
		subscribers = append(subscribers, &copied)
	}
	return subscribers, nil
}

func (r *memorySubscriberRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, subscriber := range r.subscribers {
		if subscriber.Active {
			count++
		}
	}
	return count, nil
}
