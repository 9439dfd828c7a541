package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mitrokit/ventures-api/internal/github"
)

// ReposHandler proxies the GitHub repository listing as portfolio projects.
type ReposHandler struct {
	client *github.Client
}

// NewReposHandler constructs handler.
func NewReposHandler(client *github.Client) *ReposHandler {
	return &ReposHandler{client: client}
}

// List handles GET /api/repos.
func (h *ReposHandler) List(c *fiber.Ctx) error {
	projects, err := h.client.ListProjects(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"projects": projects})
}
