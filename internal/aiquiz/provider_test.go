package aiquiz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	gotModel    string
	gotContents []*genai.Content
	calls       int
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.gotModel = model
	f.gotContents = contents
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestGeminiProvider_GenerateText(t *testing.T) {
	models := &fakeModels{resp: textResponse("```json\n{}\n```", "ignored second part")}
	p := &geminiProvider{models: models, model: "gemini-1.5-flash-002"}

	raw, err := p.GenerateText(context.Background(), "make a quiz")

	require.NoError(t, err)
	assert.Equal(t, "```json\n{}\n```", raw)
	assert.Equal(t, "gemini-1.5-flash-002", models.gotModel)
	require.Len(t, models.gotContents, 1)
	require.Len(t, models.gotContents[0].Parts, 1)
	assert.Equal(t, "make a quiz", models.gotContents[0].Parts[0].Text)
	assert.Equal(t, 1, models.calls)
}

func TestGeminiProvider_GenerateText_Empty(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"no parts", textResponse()},
		{"blank text", textResponse("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &geminiProvider{models: &fakeModels{resp: tt.resp}, model: "m"}

			_, err := p.GenerateText(context.Background(), "prompt")

			assert.ErrorIs(t, err, ErrUpstreamEmpty)
		})
	}
}

func TestGeminiProvider_GenerateText_CallError(t *testing.T) {
	cause := errors.New("429 resource exhausted")
	models := &fakeModels{err: cause}
	p := &geminiProvider{models: models, model: "m"}

	_, err := p.GenerateText(context.Background(), "prompt")

	var callErr *UpstreamCallError
	require.ErrorAs(t, err, &callErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, models.calls, "no retry")
}
