package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"icona/internal/domain"
)

const (
	suggestionsInstruction = `Based on the prompt used to create a photo, suggest 3 short, creative, and distinct refinement ideas a user could type in. For example: "add cinematic motion blur", "change expression to a subtle smirk", "make the lighting more dramatic". The original prompt was: "%s". Respond with only a valid JSON array of strings.`
	captionInstruction     = "You are a witty and clever social media caption writer. Generate a short, fun caption for this time-travel photo. It should be exciting and perfect for sharing. End with 3 relevant and trending hashtags."

	maxSuggestions = 3
)

// GenerateText sends prompt to the text model and returns its reply.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, c.textModel, generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}
	text := resp.text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Suggestions asks for up to three short refinement ideas for prompt.
func (c *Client) Suggestions(ctx context.Context, prompt string) ([]string, error) {
	resp, err := c.generate(ctx, c.textModel, generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: fmt.Sprintf(suggestionsInstruction, prompt)}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return nil, err
	}
	items, err := parseStringArray(resp.text())
	if err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	if len(items) > maxSuggestions {
		items = items[:maxSuggestions]
	}
	return items, nil
}

// Caption writes a short social caption for img.
func (c *Client) Caption(ctx context.Context, img domain.Image) (string, error) {
	if img.IsZero() {
		return "", fmt.Errorf("%w: image is empty", ErrInvalidArgument)
	}
	resp, err := c.generate(ctx, c.textModel, generateRequest{
		Contents: []content{{Role: "user", Parts: []part{
			{InlineData: &inlineData{MimeType: img.MIMEType, Data: base64.StdEncoding.EncodeToString(img.Data)}},
			{Text: captionInstruction},
		}}},
	})
	if err != nil {
		return "", err
	}
	text := resp.text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func parseStringArray(raw string) ([]string, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, errors.New("empty payload")
	}
	var decoded []string
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, err
	}
	out := decoded[:0]
	for _, s := range decoded {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func extractJSONFragment(raw string) string {
	text := trimCodeFence(raw)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
