// Package gemini implements the chat Responder on the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-1.5-flash"

var ErrNoCandidates = errors.New("no response from gemini")

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // overrides the API endpoint, used by tests
}

type Responder struct {
	client *genai.Client
	model  string
	gen    *genai.GenerateContentConfig
}

func NewResponder(ctx context.Context, cfg Config) (*Responder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Responder{
		client: client,
		model:  cfg.Model,
		gen: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.7),
			TopK:            genai.Ptr[float32](40),
			TopP:            genai.Ptr[float32](0.95),
			MaxOutputTokens: 1024,
		},
	}, nil
}

// Respond sends prompt as a single user turn and joins the text parts of
// the first candidate.
func (r *Responder) Respond(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}

	result, err := r.client.Models.GenerateContent(ctx, r.model, contents, r.gen)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrNoCandidates
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrNoCandidates
	}

	if result.UsageMetadata != nil {
		logrus.WithFields(logrus.Fields{
			"model":         r.model,
			"input_tokens":  result.UsageMetadata.PromptTokenCount,
			"output_tokens": result.UsageMetadata.CandidatesTokenCount,
		}).Debug("[GEMINI] reply generated")
	}
	return text, nil
}
