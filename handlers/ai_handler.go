package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ajashia/righttrack-server/models"
)

type askAIRequest struct {
	Query string `json:"query"`
}

func (s *Server) AskAI(c *fiber.Ctx) error {
	var req askAIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.AskAIErrorResponse{Error: "JSON body must contain 'query'"})
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.AskAIErrorResponse{Error: "query cannot be empty"})
	}

	text, err := s.AI.Ask(query)
	if err != nil {
		s.Logger.Errorw("ai query failed", "error", err)
		msg := err.Error()
		if errors.Is(err, models.ErrAINotConfigured) {
			msg = "Gemini client not configured on server. Set GEMINI_API_KEY."
		}
		return c.Status(statusFor(err)).JSON(models.AskAIErrorResponse{Error: msg})
	}
	return c.JSON(models.AskAIResponse{OK: true, Response: text})
}
