package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mitrokit/ventures-api/internal/api/dto"
	"github.com/mitrokit/ventures-api/internal/auth"
	"github.com/mitrokit/ventures-api/internal/observability"
	"github.com/mitrokit/ventures-api/internal/repository"
)

// AdminHandler exposes the gated admin surface: contact messages,
// subscribers, and service stats.
type AdminHandler struct {
	messages    repository.MessageRepository
	subscribers repository.SubscriberRepository
	metrics     *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(messages repository.MessageRepository, subscribers repository.SubscriberRepository, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{messages: messages, subscribers: subscribers, metrics: metrics}
}

// Dashboard handles GET /admin, the gated page target.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	return c.JSON(fiber.Map{
		"message": "admin dashboard",
		"user": fiber.Map{
			"id":    principal.ID,
			"email": principal.Email,
			"name":  principal.Name,
			"role":  principal.Role,
		},
	})
}

// ListMessages handles GET /api/admin/messages.
func (h *AdminHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.messages.List(c.Context())
	if err != nil {
		return err
	}

	payload := make([]dto.MessagePayload, 0, len(messages))
	for _, message := range messages {
		payload = append(payload, dto.NewMessagePayload(message))
	}
	return c.JSON(fiber.Map{"success": true, "data": payload})
}

// MarkMessageRead handles PATCH /api/admin/messages/:id/read.
func (h *AdminHandler) MarkMessageRead(c *fiber.Ctx) error {
	if err := h.messages.MarkRead(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// ListSubscribers handles GET /api/admin/subscribers.
func (h *AdminHandler) ListSubscribers(c *fiber.Ctx) error {
	subscribers, err := h.subscribers.List(c.Context())
	if err != nil {
		return err
	}

	payload := make([]dto.SubscriberPayload, 0, len(subscribers))
	for _, subscriber := range subscribers {
		payload = append(payload, dto.NewSubscriberPayload(subscriber))
	}
	return c.JSON(fiber.Map{"success": true, "data": payload})
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	messageCount, err := h.messages.Count(c.Context())
	if err != nil {
		return err
	}
	subscriberCount, err := h.subscribers.Count(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"messages":    messageCount,
			"subscribers": subscriberCount,
			"requests":    h.metrics.RequestTotals(),
			"errors":      h.metrics.ErrorTotals(),
		},
	})
}
