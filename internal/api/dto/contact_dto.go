package dto

import (
	"time"

	"github.com/mitrokit/ventures-api/internal/domain"
)

// ContactRequest payload for contact form submissions.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// MessagePayload is the stored view of a contact submission.
type MessagePayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessagePayload maps a domain message.
func NewMessagePayload(message *domain.Message) MessagePayload {
	return MessagePayload{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Content:   message.Content,
		Read:      message.Read,
		Archived:  message.Archived,
		CreatedAt: message.CreatedAt,
	}
}
