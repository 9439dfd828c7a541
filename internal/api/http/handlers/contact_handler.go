package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mitrokit/ventures-api/internal/api/dto"
	"github.com/mitrokit/ventures-api/internal/service"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contactService}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid JSON body", nil)
	}

	message, err := h.contact.Submit(c.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Content: req.Content,
	}, c.IP())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully!",
		"data":    dto.NewMessagePayload(message),
	})
}

// Describe handles GET /api/contact with usage information.
func (h *ContactHandler) Describe(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact API endpoint - POST with name, email, subject, and content",
		"required": fiber.Map{
			"name":    "string (min 2 characters)",
			"email":   "string (valid email)",
			"content": "string (min 10 characters)",
		},
		"optional": fiber.Map{
			"subject": "string",
		},
	})
}
