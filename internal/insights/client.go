package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/rdmartins/drilltrack-backend/pkg/config"
)

// TextGenerator produces free text for a prompt. The production
// implementation talks to the Gemini REST API; tests substitute stubs.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls the generateContent endpoint. No retries: a failed call
// surfaces immediately and the caller decides what to do.
type GeminiClient struct {
	http   *resty.Client
	model  string
	apiKey string
}

// NewGeminiClient builds the outbound client from config.
func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0)

	return &GeminiClient{
		http:   client,
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}
}

// Generate sends the prompt and returns the first candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini api key not configured")
	}

	var out generateContentResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(generateContentRequest{
			Contents: []content{{Parts: []part{{Text: prompt}}}},
		}).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("calling gemini: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var b strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
