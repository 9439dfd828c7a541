package domain

import "time"

// Message is a contact form submission.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Content   string
	Read      bool
	Archived  bool
	CreatedAt time.Time
}
