package services

import (
	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/genai"
)

// AIService forwards free-text queries to the generative model boundary.
type AIService struct {
	client *genai.Client
	log    *zap.SugaredLogger
}

func NewAIService(client *genai.Client, log *zap.SugaredLogger) *AIService {
	return &AIService{client: client, log: log}
}

// Ask returns the model's normalized text output for a query. Returns
// models.ErrAINotConfigured without any network call when no API key is
// set.
func (s *AIService) Ask(query string) (string, error) {
	text, err := s.client.Generate(query)
	if err != nil {
		return "", err
	}
	s.log.Infow("ai query answered", "chars", len(text))
	return text, nil
}
