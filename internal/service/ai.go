package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Description is the AI-generated prefill for a project form.
type Description struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// AIService calls an OpenAI-compatible chat-completions endpoint to
// prefill project descriptions. Failures are never fatal: any error
// degrades to an empty result and the admin writes the text by hand.
type AIService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewAIService(baseURL, apiKey, model string, timeout time.Duration) *AIService {
	return &AIService{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// GenerateDescription produces a short summary and a longer description
// for a project. Without an API key it returns an empty result, the
// endpoint is optional.
func (s *AIService) GenerateDescription(ctx context.Context, title string, technologies []string, notes string) Description {
	if s.apiKey == "" {
		return Description{}
	}

	prompt := fmt.Sprintf(
		"Write a portfolio entry for a software project titled %q using %s.\n"+
			"Notes from the author: %s\n"+
			"Reply with exactly two paragraphs separated by a blank line: "+
			"a one-sentence summary, then a longer description.",
		title, strings.Join(technologies, ", "), notes,
	)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		slog.Warn("ai description generation failed", "error", err, "title", title)
		return Description{}
	}

	summary, description, found := strings.Cut(text, "\n\n")
	if !found {
		summary = text
	}

	return Description{
		Summary:     strings.TrimSpace(summary),
		Description: strings.TrimSpace(description),
	}
}

func (s *AIService) complete(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion request returned %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	err = json.NewDecoder(resp.Body).Decode(&out)
	if err != nil {
		return "", err
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("completion response had no choices")
	}

	return out.Choices[0].Message.Content, nil
}
