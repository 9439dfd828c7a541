package dto

import (
	"time"

	"github.com/mitrokit/ventures-api/internal/domain"
)

// SubscribeRequest payload for newsletter subscriptions.
type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SubscriberPayload is the stored view of a subscription.
type SubscriberPayload struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Active       bool      `json:"active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewSubscriberPayload maps a domain subscriber.
func NewSubscriberPayload(subscriber *domain.Subscriber) SubscriberPayload {
	return SubscriberPayload{
		ID:           subscriber.ID,
		Email:        subscriber.Email,
		Name:         subscriber.Name,
		Active:       subscriber.Active,
		SubscribedAt: subscriber.SubscribedAt,
	}
}
