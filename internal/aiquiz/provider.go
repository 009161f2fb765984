package aiquiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizifai/internal/config"
	"google.golang.org/genai"
)

// Provider sends one prompt to the generation API and returns its raw text.
type Provider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// contentGenerator is the part of *genai.Models the provider uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiProvider struct {
	models contentGenerator
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &geminiProvider{models: client.Models, model: model}, nil
}

func (p *geminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini generateContent failed")
		return "", &UpstreamCallError{Err: err}
	}

	raw := firstText(result)
	if strings.TrimSpace(raw) == "" {
		return "", ErrUpstreamEmpty
	}

	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	return raw, nil
}

// firstText returns the first text part of the first candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0] == nil {
		return ""
	}
	return c.Content.Parts[0].Text
}
