// Package genai is the pass-through boundary to the Gemini generative-text
// API. It speaks the REST surface directly because the response shape must
// be normalized from whatever the model returns: candidate text when
// present, otherwise the raw payload as a string.
package genai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/config"
	"github.com/ajashia/righttrack-server/models"
)

type Client struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
	log     *zap.SugaredLogger
}

func NewClient(cfg config.GeminiConfig, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		http:    &http.Client{},
		log:     log,
	}
}

// Configured reports whether an API key is present. When it is not, the
// client must never be invoked.
func (c *Client) Configured() bool { return c.apiKey != "" }

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateCandidate struct {
	Content generateContent `json:"content"`
}

type generateResponse struct {
	Candidates []generateCandidate `json:"candidates"`
}

// Generate forwards a text query to the model and normalizes the response
// to plain text: the first candidate's concatenated part text when
// available, otherwise the raw response body.
func (c *Client) Generate(query string) (string, error) {
	if !c.Configured() {
		return "", models.ErrAINotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: query}}}},
	})
	if err != nil {
		return "", &models.UpstreamError{Service: "gemini", Err: err}
	}

	endpoint := fmt.Sprintf("%s/v1beta/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &models.UpstreamError{Service: "gemini", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", &models.UpstreamError{Service: "gemini", Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &models.UpstreamError{Service: "gemini", Err: err}
	}
	if res.StatusCode != http.StatusOK {
		c.log.Warnw("gemini returned non-success status", "status", res.StatusCode)
		return "", &models.UpstreamError{Service: "gemini", Err: fmt.Errorf("status code %d", res.StatusCode)}
	}

	return normalizeResponse(raw), nil
}

// normalizeResponse extracts candidate text from the payload, falling back
// to the serialized payload when no candidate carries any.
func normalizeResponse(raw []byte) string {
	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err == nil {
		for _, cand := range parsed.Candidates {
			var parts []string
			for _, p := range cand.Content.Parts {
				if p.Text != "" {
					parts = append(parts, p.Text)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, "")
			}
		}
	}
	return string(raw)
}
