// Package pipeline turns a selection into the final image prompt and runs
// the image edit. The compile step is pure; only the expansion and the image
// call reach the network.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"icona/internal/catalog"
	"icona/internal/domain"
	"icona/internal/promptbuilder"
	"icona/internal/sanitize"
)

var (
	ErrPromptGeneration = errors.New("failed to generate prompt")
	ErrImageGeneration  = errors.New("failed to generate image")
	ErrPresetNotFound   = fmt.Errorf("preset %w", domain.ErrNotFound)
	ErrMissingPrompt    = fmt.Errorf("%w: previous prompt is required", domain.ErrInvalidPrompt)
	ErrNoImageEditor    = errors.New("pipeline: no image editor configured")
)

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type ImageEditor interface {
	EditImage(ctx context.Context, src domain.Image, prompt string) (domain.Image, error)
}

type SuggestionSource interface {
	Suggestions(ctx context.Context, prompt string) ([]string, error)
}

// Source tells where a final prompt came from.
type Source string

const (
	SourcePreset Source = "preset"
	SourceModel  Source = "model"
)

// FinalPrompt is the literal instruction handed to the image model.
type FinalPrompt struct {
	Text       string           `json:"prompt"`
	Source     Source           `json:"source"`
	PresetID   string           `json:"preset_id,omitempty"`
	MetaPrompt string           `json:"-"`
	Verdict    sanitize.Verdict `json:"verdict"`
}

type Options struct {
	Catalog         *catalog.Registry
	Text            TextGenerator
	Images          ImageEditor
	Suggestions     SuggestionSource
	InjectionPolicy sanitize.Policy
	Logger          zerolog.Logger
}

type Pipeline struct {
	catalog  *catalog.Registry
	compiler *promptbuilder.Compiler
	text     TextGenerator
	images   ImageEditor
	suggest  SuggestionSource
	policy   sanitize.Policy
	logger   zerolog.Logger
}

func New(opts Options) (*Pipeline, error) {
	if opts.Catalog == nil {
		return nil, errors.New("pipeline: catalog is required")
	}
	if opts.Text == nil {
		return nil, errors.New("pipeline: text generator is required")
	}
	policy := opts.InjectionPolicy
	if policy == "" {
		policy = sanitize.PolicyWarn
	}
	return &Pipeline{
		catalog:  opts.Catalog,
		compiler: promptbuilder.NewCompiler(opts.Catalog),
		text:     opts.Text,
		images:   opts.Images,
		suggest:  opts.Suggestions,
		policy:   policy,
		logger:   opts.Logger,
	}, nil
}

func (p *Pipeline) Catalog() *catalog.Registry { return p.catalog }

// Prepare sanitizes the free-form fields of opts and screens them for
// injection phrasing, both as submitted and as cleaned. Under PolicyBlock a
// flagged input returns an error wrapping domain.ErrUnsafePrompt.
func (p *Pipeline) Prepare(opts promptbuilder.Options) (promptbuilder.Options, sanitize.Verdict, error) {
	opts = opts.Normalize()
	rawEra := opts.ManualEraText.OrElse("")
	rawDetails := opts.AdditionalDetails
	if text, ok := opts.ManualEraText.Get(); ok {
		opts.ManualEraText = domain.SomeText(sanitize.ManualEraText(text))
	}
	opts.AdditionalDetails = sanitize.AdditionalDetails(opts.AdditionalDetails)

	verdict := p.screen(rawEra, opts.ManualEraText.OrElse(""), rawDetails, opts.AdditionalDetails)
	if err := p.enforce(verdict); err != nil {
		return opts, verdict, err
	}
	return opts, verdict, nil
}

// Compile prepares opts and returns the meta-prompt without calling a model.
func (p *Pipeline) Compile(opts promptbuilder.Options) (promptbuilder.MetaPrompt, sanitize.Verdict, error) {
	opts, verdict, err := p.Prepare(opts)
	if err != nil {
		return promptbuilder.MetaPrompt{}, verdict, err
	}
	return p.compiler.Compile(opts), verdict, nil
}

// BuildFinalPrompt returns the literal prompt of the requested professional
// preset when it carries one, otherwise the text model's expansion of the
// compiled meta-prompt.
func (p *Pipeline) BuildFinalPrompt(ctx context.Context, opts promptbuilder.Options) (string, error) {
	fp, err := p.Build(ctx, opts)
	if err != nil {
		return "", err
	}
	return fp.Text, nil
}

// Screen runs the same input checks as Build without calling a model.
func (p *Pipeline) Screen(opts promptbuilder.Options) (sanitize.Verdict, error) {
	opts = opts.Normalize()
	if _, ok := p.literalPreset(opts); ok {
		return sanitize.Verdict{Safe: true}, nil
	}
	_, verdict, err := p.Prepare(opts)
	return verdict, err
}

func (p *Pipeline) literalPreset(opts promptbuilder.Options) (catalog.Preset, bool) {
	presetID, ok := opts.ProfessionalPresetID.Get()
	if !ok {
		return catalog.Preset{}, false
	}
	preset, found := p.catalog.FindPreset(presetID)
	if !found || !preset.HasLiteralPrompt() {
		return catalog.Preset{}, false
	}
	return preset, true
}

// Build is BuildFinalPrompt with provenance.
func (p *Pipeline) Build(ctx context.Context, opts promptbuilder.Options) (FinalPrompt, error) {
	opts = opts.Normalize()
	if preset, ok := p.literalPreset(opts); ok {
		return FinalPrompt{
			Text:     preset.ManualEraText,
			Source:   SourcePreset,
			PresetID: preset.ID,
			Verdict:  sanitize.Verdict{Safe: true},
		}, nil
	}

	opts, verdict, err := p.Prepare(opts)
	if err != nil {
		return FinalPrompt{Verdict: verdict}, err
	}
	meta := p.compiler.Compile(opts)
	text, err := p.expand(ctx, meta.Text)
	if err != nil {
		return FinalPrompt{Verdict: verdict}, err
	}
	return FinalPrompt{
		Text:       text,
		Source:     SourceModel,
		PresetID:   opts.ProfessionalPresetID.OrElse(""),
		MetaPrompt: meta.Text,
		Verdict:    verdict,
	}, nil
}

// GenerateFromPreset resolves a preset directly by id.
func (p *Pipeline) GenerateFromPreset(ctx context.Context, presetID string) (FinalPrompt, error) {
	preset, ok := p.catalog.FindPreset(presetID)
	if !ok {
		return FinalPrompt{}, fmt.Errorf("%w: %q", ErrPresetNotFound, presetID)
	}
	if preset.HasLiteralPrompt() {
		return FinalPrompt{
			Text:     preset.ManualEraText,
			Source:   SourcePreset,
			PresetID: preset.ID,
			Verdict:  sanitize.Verdict{Safe: true},
		}, nil
	}
	meta := p.compiler.Compile(promptbuilder.FromPreset(preset))
	text, err := p.expand(ctx, meta.Text)
	if err != nil {
		return FinalPrompt{}, err
	}
	return FinalPrompt{
		Text:       text,
		Source:     SourceModel,
		PresetID:   preset.ID,
		MetaPrompt: meta.Text,
		Verdict:    sanitize.Verdict{Safe: true},
	}, nil
}

// Refine validates instruction before any network call, then asks the text
// model to rewrite lastPrompt accordingly.
func (p *Pipeline) Refine(ctx context.Context, lastPrompt, instruction string) (FinalPrompt, error) {
	lastPrompt, cleaned, verdict, err := p.prepareRefinement(lastPrompt, instruction)
	if err != nil {
		return FinalPrompt{Verdict: verdict}, err
	}
	meta := RefinementMetaPrompt(lastPrompt, cleaned)
	text, err := p.expand(ctx, meta)
	if err != nil {
		return FinalPrompt{Verdict: verdict}, err
	}
	return FinalPrompt{Text: text, Source: SourceModel, MetaPrompt: meta, Verdict: verdict}, nil
}

// ScreenRefinement runs the same input checks as Refine without calling a
// model.
func (p *Pipeline) ScreenRefinement(lastPrompt, instruction string) (sanitize.Verdict, error) {
	_, _, verdict, err := p.prepareRefinement(lastPrompt, instruction)
	return verdict, err
}

func (p *Pipeline) prepareRefinement(lastPrompt, instruction string) (string, string, sanitize.Verdict, error) {
	lastPrompt = strings.TrimSpace(lastPrompt)
	if lastPrompt == "" {
		return "", "", sanitize.Verdict{}, ErrMissingPrompt
	}
	cleaned, err := sanitize.RefinementInstruction(instruction)
	if err != nil {
		return "", "", sanitize.Verdict{}, err
	}
	verdict := p.screen(instruction, cleaned)
	if err := p.enforce(verdict); err != nil {
		return "", "", verdict, err
	}
	return lastPrompt, cleaned, verdict, nil
}

// RefinementMetaPrompt embeds an already sanitized instruction.
func RefinementMetaPrompt(lastPrompt, instruction string) string {
	return fmt.Sprintf("Refine the previous image based on this instruction: '%s'. The original prompt that created the image was: \"%s\"", instruction, lastPrompt)
}

// RenderImage runs the image edit for a final prompt.
func (p *Pipeline) RenderImage(ctx context.Context, src domain.Image, prompt string) (domain.Image, error) {
	if p.images == nil {
		return domain.Image{}, ErrNoImageEditor
	}
	img, err := p.images.EditImage(ctx, src, prompt)
	if err != nil {
		return domain.Image{}, fmt.Errorf("%w: %w", ErrImageGeneration, err)
	}
	return img, nil
}

// Suggestions never fails: errors and a missing source yield an empty slice.
func (p *Pipeline) Suggestions(ctx context.Context, prompt string) []string {
	if p.suggest == nil || strings.TrimSpace(prompt) == "" {
		return []string{}
	}
	items, err := p.suggest.Suggestions(ctx, prompt)
	if err != nil {
		p.logger.Warn().Err(err).Msg("pipeline: refinement suggestions unavailable")
		return []string{}
	}
	out := make([]string, 0, 3)
	for _, s := range items {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func (p *Pipeline) expand(ctx context.Context, meta string) (string, error) {
	text, err := p.text.GenerateText(ctx, meta)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPromptGeneration, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text model returned an empty prompt", ErrPromptGeneration)
	}
	return text, nil
}

func (p *Pipeline) screen(fields ...string) sanitize.Verdict {
	for _, f := range fields {
		if f == "" {
			continue
		}
		if v := sanitize.DetectInjection(f); !v.Safe {
			return v
		}
	}
	return sanitize.Verdict{Safe: true}
}

func (p *Pipeline) enforce(v sanitize.Verdict) error {
	if v.Safe {
		return nil
	}
	p.logger.Warn().
		Str("policy", string(p.policy)).
		Str("pattern", v.Pattern).
		Msg("pipeline: possible prompt injection")
	if p.policy == sanitize.PolicyBlock {
		return fmt.Errorf("%w: %s", domain.ErrUnsafePrompt, v.Reason)
	}
	return nil
}
