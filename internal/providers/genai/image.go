package genai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"icona/internal/domain"
)

const fallbackImagePrompt = "A beautiful, high-quality photograph of the subject."

// EditImage sends src and prompt to the image model and returns the first
// image part of the reply.
func (c *Client) EditImage(ctx context.Context, src domain.Image, prompt string) (domain.Image, error) {
	if src.IsZero() {
		return domain.Image{}, fmt.Errorf("%w: source image is empty", ErrInvalidArgument)
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = fallbackImagePrompt
	}
	resp, err := c.generate(ctx, c.imageModel, generateRequest{
		Contents: []content{{Role: "user", Parts: []part{
			{InlineData: &inlineData{MimeType: src.MIMEType, Data: base64.StdEncoding.EncodeToString(src.Data)}},
			{Text: prompt},
		}}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	})
	if err != nil {
		return domain.Image{}, err
	}
	inline := resp.firstInline()
	if inline == nil {
		return domain.Image{}, ErrNoImage
	}
	data, err := base64.StdEncoding.DecodeString(inline.Data)
	if err != nil {
		return domain.Image{}, fmt.Errorf("decode image data: %w", err)
	}
	mime := inline.MimeType
	if mime == "" {
		mime = "image/png"
	}
	return domain.Image{Data: data, MIMEType: mime}, nil
}
