package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mitrokit/ventures-api/internal/api/dto"
	"github.com/mitrokit/ventures-api/internal/service"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

// SubscribeHandler exposes the newsletter subscription endpoint.
type SubscribeHandler struct {
	subscribe *service.SubscribeService
}

// NewSubscribeHandler constructs handler.
func NewSubscribeHandler(subscribeService *service.SubscribeService) *SubscribeHandler {
	return &SubscribeHandler{subscribe: subscribeService}
}

// Subscribe handles POST /api/subscribe.
func (h *SubscribeHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid JSON body", nil)
	}

	subscriber, err := h.subscribe.Subscribe(c.Context(), req.Email, req.Name, c.IP())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully subscribed to newsletter!",
		"data":    dto.NewSubscriberPayload(subscriber),
	})
}

// Describe handles GET /api/subscribe with usage information.
func (h *SubscribeHandler) Describe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Newsletter subscription endpoint - POST with email",
		"required": fiber.Map{
			"email": "string (valid email)",
		},
		"optional": fiber.Map{
			"name": "string",
		},
	})
}
