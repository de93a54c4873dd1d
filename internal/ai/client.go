// Package ai calls the generative text collaborator for content
// suggestions. The collaborator is best-effort by contract: every failure
// mode (missing credential, network error, malformed or empty response)
// degrades to a user-readable fallback string so editing never breaks on
// a bad generation.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"craftdeck/internal/editor"
)

// Fallback messages returned in place of generated content.
const (
	FallbackNoKey      = "API Key not configured."
	FallbackNoContent  = "No content generated."
	FallbackGeneration = "Sorry, I couldn't generate content at this time. Please check your connection or API key."
)

// IsFallback reports whether content is one of the degraded responses
// rather than generated text.
func IsFallback(content string) bool {
	switch content {
	case FallbackNoKey, FallbackNoContent, FallbackGeneration:
		return true
	}
	return false
}

// Client talks to a Gemini-style generateContent endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a collaborator client. An empty apiKey is tolerated;
// Generate then returns the configuration fallback.
func NewClient(endpoint, apiKey, model string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint:   strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// systemPrompt picks the instruction for the template category.
func systemPrompt(category editor.Category) string {
	switch category {
	case editor.CategoryResume:
		return "You are an expert career coach. Generate a professional summary and 3 key bullet points for a resume based on the user's input."
	case editor.CategoryBusinessCard:
		return "You are a branding expert. Suggest a catchy tagline and a job title description for a business card based on the user's input."
	case editor.CategorySocialMedia:
		return "You are a social media manager. Write an engaging caption with hashtags for the described post."
	case editor.CategoryProfessionalPhoto:
		return "You are an expert photographer and prompt engineer. Create a highly detailed, photorealistic image generation prompt that would result in a professional photo described by the user. Include lighting, camera settings, and composition details."
	}
	return "You are a helpful creative assistant. Provide suggestions based on the user's input."
}

type generateRequest struct {
	SystemInstruction content `json:"systemInstruction"`
	Contents          content `json:"contents"`
	GenerationConfig  genConf `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConf struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate asks the collaborator for content for the given category and
// user prompt. It always returns displayable text; errors surface only in
// the log.
func (c *Client) Generate(ctx context.Context, category editor.Category, userPrompt string) string {
	if c.apiKey == "" {
		return FallbackNoKey
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemPrompt(category)}}},
		Contents:          content{Parts: []part{{Text: userPrompt}}},
		GenerationConfig:  genConf{Temperature: 0.7},
	})
	if err != nil {
		c.logger.Error("marshal generation request failed", slog.Any("error", err))
		return FallbackGeneration
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("build generation request failed", slog.Any("error", err))
		return FallbackGeneration
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("generation request failed", slog.Any("error", err))
		return FallbackGeneration
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		c.logger.Warn("generation request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", strings.TrimSpace(string(snippet))),
		)
		return FallbackGeneration
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("decode generation response failed", slog.Any("error", err))
		return FallbackGeneration
	}

	text := extractText(parsed)
	if text == "" {
		return FallbackNoContent
	}
	return text
}

func extractText(resp generateResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break // first candidate only
	}
	return strings.TrimSpace(b.String())
}
