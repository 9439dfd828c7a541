package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mitrokit/ventures-api/internal/domain"
	"github.com/mitrokit/ventures-api/internal/events"
	"github.com/mitrokit/ventures-api/internal/ratelimit"
	"github.com/mitrokit/ventures-api/internal/repository"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address matches the accepted shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ContactInput is a contact form submission before validation.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Content string
}

// ContactService validates, rate-limits, and stores contact submissions.
type ContactService struct {
	messages   repository.MessageRepository
	limiter    ratelimit.Limiter
	dispatcher events.Dispatcher
}

// NewContactService builds the service.
func NewContactService(messages repository.MessageRepository, limiter ratelimit.Limiter, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{messages: messages, limiter: limiter, dispatcher: dispatcher}
}

// Submit validates the input, consumes rate-limit budget for both client IP
// and submitter email, and persists the message. Limiter backend errors
// fail open.
func (s *ContactService) Submit(ctx context.Context, input ContactInput, clientIP string) (*domain.Message, error) {
	if errs := validateContactInput(input); len(errs) > 0 {
		return nil, apperrors.NewValidationError("validation failed", map[string]any{"errors": errs})
	}

	for _, key := range []string{"contact:ip:" + clientIP, "contact:email:" + input.Email} {
		allowed, err := s.limiter.Allow(ctx, key)
		if err == nil && !allowed {
			return nil, apperrors.NewRateLimited("too many submissions, try again later")
		}
	}

	message := &domain.Message{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Content: input.Content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactMessageReceived,
			Timestamp: time.Now(),
			Payload: events.ContactMessageReceivedPayload{
				MessageID: message.ID,
				Name:      message.Name,
				Email:     message.Email,
				Subject:   message.Subject,
			},
		})
	}

	return message, nil
}

func validateContactInput(input ContactInput) []string {
	var errs []string
	if len(strings.TrimSpace(input.Name)) < 2 {
		errs = append(errs, "Name must be at least 2 characters")
	}
	if !ValidEmail(input.Email) {
		errs = append(errs, "Valid email is required")
	}
	if len(strings.TrimSpace(input.Content)) < 10 {
		errs = append(errs, "Message must be at least 10 characters")
	}
	return errs
}
