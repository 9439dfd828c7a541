package domain

import "time"

// Subscriber is a newsletter subscription. Email is the natural key;
// re-subscribing an existing address is idempotent.
type Subscriber struct {
	ID           string
	Email        string
	Name         string
	Active       bool
	SubscribedAt time.Time
}
