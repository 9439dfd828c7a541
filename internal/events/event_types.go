package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactMessageReceived EventType = "contact_message_received"
	EventNewsletterSubscribed   EventType = "newsletter_subscribed"
	EventLoginSucceeded         EventType = "login_succeeded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ContactMessageReceivedPayload payload.
type ContactMessageReceivedPayload struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
}

// NewsletterSubscribedPayload payload.
type NewsletterSubscribedPayload struct {
	SubscriberID string `json:"subscriber_id"`
	Email        string `json:"email"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
