// Package usage estimates model cost per request and records it.
package usage

import (
	"context"
	"math"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"icona/internal/domain"
)

// Pricing is expressed in US dollars.
type Pricing struct {
	TextInputPerMillion  float64
	TextOutputPerMillion float64
	PerImage             float64
}

// DefaultPricing matches the published Gemini 2.5 Flash rates.
var DefaultPricing = Pricing{
	TextInputPerMillion:  0.30,
	TextOutputPerMillion: 2.50,
	PerImage:             0.039,
}

// EstimateTokens approximates the token count of s at four characters per
// token, rounded up.
func EstimateTokens(s string) int {
	n := utf8.RuneCountInString(s)
	return int(math.Ceil(float64(n) / 4))
}

// Cost returns the estimated spend for one call.
func (p Pricing) Cost(inputTokens, outputTokens, images int) float64 {
	return float64(inputTokens)/1_000_000*p.TextInputPerMillion +
		float64(outputTokens)/1_000_000*p.TextOutputPerMillion +
		float64(images)*p.PerImage
}

// Recorder persists usage events. domain.UsageRepository satisfies it.
type Recorder interface {
	Record(ctx context.Context, event domain.UsageEvent) error
}

// Tracker fills in cost estimates, logs each event and persists it. Storage
// failures are logged and never surface to the caller.
type Tracker struct {
	repo    Recorder
	pricing Pricing
	logger  zerolog.Logger
	now     func() time.Time
}

func NewTracker(repo Recorder, pricing Pricing, logger zerolog.Logger) *Tracker {
	return &Tracker{repo: repo, pricing: pricing, logger: logger, now: time.Now}
}

// TextCall builds an event for a text model call from its prompt and reply.
func TextCall(endpoint, prompt, reply string) domain.UsageEvent {
	return domain.UsageEvent{
		Endpoint:     endpoint,
		InputTokens:  EstimateTokens(prompt),
		OutputTokens: EstimateTokens(reply),
	}
}

// ImageCall builds an event for an image edit.
func ImageCall(endpoint, prompt string) domain.UsageEvent {
	return domain.UsageEvent{
		Endpoint:    endpoint,
		InputTokens: EstimateTokens(prompt),
		ImageCount:  1,
	}
}

func (t *Tracker) Record(ctx context.Context, ev domain.UsageEvent) domain.UsageEvent {
	if !ev.Success {
		ev.ImageCount = 0
		ev.OutputTokens = 0
	}
	ev.EstimatedCost = t.pricing.Cost(ev.InputTokens, ev.OutputTokens, ev.ImageCount)
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = t.now().UTC()
	}

	t.logger.Info().
		Str("endpoint", ev.Endpoint).
		Str("request_id", ev.RequestID).
		Bool("success", ev.Success).
		Int("input_tokens", ev.InputTokens).
		Int("output_tokens", ev.OutputTokens).
		Int("images", ev.ImageCount).
		Float64("estimated_cost_usd", ev.EstimatedCost).
		Int("latency_ms", ev.LatencyMS).
		Msg("usage")

	if t.repo == nil {
		return ev
	}
	if err := t.repo.Record(ctx, ev); err != nil {
		t.logger.Error().Err(err).Str("endpoint", ev.Endpoint).Msg("usage: persist failed")
	}
	return ev
}
