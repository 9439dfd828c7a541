package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mitrokit/ventures-api/internal/domain"
	"github.com/mitrokit/ventures-api/internal/events"
	"github.com/mitrokit/ventures-api/internal/ratelimit"
	"github.com/mitrokit/ventures-api/internal/repository"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

// SubscribeService manages newsletter subscriptions.
type SubscribeService struct {
	subscribers repository.SubscriberRepository
	limiter     ratelimit.Limiter
	dispatcher  events.Dispatcher
}

// NewSubscribeService builds the service.
func NewSubscribeService(subscribers repository.SubscriberRepository, limiter ratelimit.Limiter, dispatcher events.Dispatcher) *SubscribeService {
	return &SubscribeService{subscribers: subscribers, limiter: limiter, dispatcher: dispatcher}
}

// Subscribe validates the email, consumes rate-limit budget, and upserts the
// subscriber. Re-subscribing an existing address succeeds without creating a
// duplicate.
func (s *SubscribeService) Subscribe(ctx context.Context, email, name, clientIP string) (*domain.Subscriber, error) {
	if !ValidEmail(email) {
		return nil, apperrors.NewValidationError("valid email is required", nil)
	}

	allowed, err := s.limiter.Allow(ctx, "subscribe:ip:"+clientIP)
	if err == nil && !allowed {
		return nil, apperrors.NewRateLimited("too many requests, try again later")
	}

	subscriber := &domain.Subscriber{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	if err := s.subscribers.Upsert(ctx, subscriber); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventNewsletterSubscribed,
			Timestamp: time.Now(),
			Payload: events.NewsletterSubscribedPayload{
				SubscriberID: subscriber.ID,
				Email:        subscriber.Email,
			},
		})
	}

	return subscriber, nil
}
