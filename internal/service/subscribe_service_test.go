package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitrokit/ventures-api/internal/ratelimit"
	"github.com/mitrokit/ventures-api/internal/repository"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

func TestSubscribeService_Subscribe(t *testing.T) {
	subscribers := repository.NewMemorySubscriberRepository()
	svc := NewSubscribeService(subscribers, ratelimit.NewMemoryLimiter(5, time.Minute), nil)

	subscriber, err := svc.Subscribe(context.Background(), "jane@example.com", "Jane", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, subscriber.Active)
	assert.NotEmpty(t, subscriber.ID)
}

func TestSubscribeService_ResubscribeIsIdempotent(t *testing.T) {
	subscribers := repository.NewMemorySubscriberRepository()
	svc := NewSubscribeService(subscribers, ratelimit.NewMemoryLimiter(10, time.Minute), nil)

	first, err := svc.Subscribe(context.Background(), "jane@example.com", "Jane", "10.0.0.1")
	require.NoError(t, err)
	second, err := svc.Subscribe(context.Background(), "jane@example.com", "Jane D.", "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jane D.", second.Name)

	count, err := subscribers.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSubscribeService_InvalidEmail(t *testing.T) {
	svc := NewSubscribeService(repository.NewMemorySubscriberRepository(), ratelimit.NewMemoryLimiter(5, time.Minute), nil)

	_, err := svc.Subscribe(context.Background(), "not-an-email", "", "10.0.0.1")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
