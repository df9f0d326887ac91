package genai

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajashia/righttrack-server/config"
	"github.com/ajashia/righttrack-server/models"
)

func testGenaiClient(url, key string) *Client {
	return NewClient(config.GeminiConfig{
		BaseURL: url,
		Model:   "models/test-model",
		APIKey:  key,
	}, zap.NewNop().Sugar())
}

func TestGenerateCandidateText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "models/test-model:generateContent")
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "next train to Agra")
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"Take the "},{"text":"Shatabdi."}]}}]}`)
	}))
	defer ts.Close()

	text, err := testGenaiClient(ts.URL, "secret").Generate("next train to Agra")
	require.NoError(t, err)
	assert.Equal(t, "Take the Shatabdi.", text)
}

func TestGenerateRawFallback(t *testing.T) {
	// A response with no usable candidate text is passed through as-is.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"promptFeedback":{"blockReason":"SAFETY"}}`)
	}))
	defer ts.Close()

	text, err := testGenaiClient(ts.URL, "secret").Generate("q")
	require.NoError(t, err)
	assert.Equal(t, `{"promptFeedback":{"blockReason":"SAFETY"}}`, text)
}

func TestGenerateNotConfigured(t *testing.T) {
	c := testGenaiClient("http://unused.invalid", "")
	_, err := c.Generate("q")
	assert.ErrorIs(t, err, models.ErrAINotConfigured)
}

func TestGenerateUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := testGenaiClient(ts.URL, "secret").Generate("q")
	require.Error(t, err)

	var upstream *models.UpstreamError
	assert.True(t, errors.As(err, &upstream))
}
