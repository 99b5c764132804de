package generator

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"laborlink/internal/config"
	"laborlink/internal/pkg/logging"

	"github.com/gofiber/fiber/v3/client"
)

type GeminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *client.Client
	logger  *logging.Logger
}

func NewGeminiGenerator(cfg config.GeneratorConfig, logger *logging.Logger) *GeminiGenerator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := client.New()
	c.SetTimeout(timeout)

	return &GeminiGenerator{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   strings.TrimSpace(cfg.Model),
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		client:  c,
		logger:  logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *GeminiGenerator) Generate(ctx context.Context, title, category, locale string) string {
	if g.apiKey == "" {
		g.logger.Warn("description generator has no API key, returning placeholder")
		return PlaceholderMissingKey
	}

	text, err := g.generate(ctx, buildPrompt(title, category, locale))
	if err != nil {
		g.logger.Error("description generation failed", "title", title, "category", category, "err", err)
		return PlaceholderFailed
	}
	if text == "" {
		return PlaceholderUnavailable
	}
	return text
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", g.apiKey).
		SetJSON(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Close()

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var out geminiResponse
	if err := resp.JSON(&out); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini error: %s", out.Error.Message)
	}

	var b strings.Builder
	for _, c := range out.Candidates {
		for _, p := range c.Content.Parts {
			b.WriteString(p.Text)
		}
		if b.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(b.String()), nil
}
