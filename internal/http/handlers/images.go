package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"icona/internal/domain"
	"icona/internal/middleware"
	"icona/internal/pipeline"
	"icona/internal/promptbuilder"
	"icona/internal/sanitize"
	"icona/internal/usage"
)

var errUnsupportedImage = errors.New("unsupported image type")

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// imagePayload carries the source photo as raw base64 or a data URL.
type imagePayload struct {
	Image    string `json:"image"`
	MIMEType string `json:"mime_type"`
}

type generateRequest struct {
	imagePayload
	Options promptbuilder.Options `json:"options"`
}

type refineRequest struct {
	imagePayload
	LastPrompt  string `json:"last_prompt"`
	Instruction string `json:"instruction"`
}

type imageResponse struct {
	Image            string           `json:"image"`
	MIMEType         string           `json:"mime_type"`
	Prompt           string           `json:"prompt"`
	Source           pipeline.Source  `json:"source"`
	PresetID         string           `json:"preset_id,omitempty"`
	Suggestions      []string         `json:"suggestions"`
	CreditsRemaining int              `json:"credits_remaining"`
	Verdict          sanitize.Verdict `json:"verdict"`
}

func (a *App) decodeImage(p imagePayload) (domain.Image, error) {
	raw := strings.TrimSpace(p.Image)
	if raw == "" {
		return domain.Image{}, fmt.Errorf("%w: image is required", errBadPayload)
	}
	mime := strings.TrimSpace(p.MIMEType)
	if rest, ok := strings.CutPrefix(raw, "data:"); ok {
		header, data, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return domain.Image{}, fmt.Errorf("%w: image data URL must be base64", errBadPayload)
		}
		if mime == "" {
			mime = strings.TrimSuffix(header, ";base64")
		}
		raw = data
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return domain.Image{}, fmt.Errorf("%w: image is not valid base64", errBadPayload)
	}
	if int64(len(data)) > a.maxUploadBytes {
		return domain.Image{}, fmt.Errorf("%w: image exceeds %d bytes", errBodyTooLarge, a.maxUploadBytes)
	}
	sniffed := http.DetectContentType(data)
	if !strings.HasPrefix(sniffed, "image/") {
		return domain.Image{}, fmt.Errorf("%w: %w", errBadPayload, errUnsupportedImage)
	}
	if mime == "" {
		mime = sniffed
	}
	mime = strings.ToLower(mime)
	if _, ok := allowedImageTypes[mime]; !ok {
		return domain.Image{}, fmt.Errorf("%w: %w %q", errBadPayload, errUnsupportedImage, mime)
	}
	return domain.Image{Data: data, MIMEType: mime}, nil
}

// ImagesGenerate builds the final prompt for a selection and renders it
// against the uploaded photo.
func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	if a.currentUserID(r) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req generateRequest
	if err := a.decode(w, r, &req); err != nil {
		a.badRequest(w, err)
		return
	}
	src, err := a.decodeImage(req.imagePayload)
	if err != nil {
		a.badRequest(w, err)
		return
	}
	if _, err := a.Pipeline.Screen(req.Options); err != nil {
		a.fail(w, r, err)
		return
	}
	a.generate(w, r, src, domain.CreditReasonGeneration, func(ctx context.Context) (pipeline.FinalPrompt, error) {
		return a.Pipeline.Build(ctx, req.Options)
	})
}

// ImagesPreset renders a quick-hit preset by id.
func (a *App) ImagesPreset(w http.ResponseWriter, r *http.Request) {
	if a.currentUserID(r) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	presetID := chi.URLParam(r, "preset_id")
	if _, ok := a.Pipeline.Catalog().FindPreset(presetID); !ok {
		a.error(w, http.StatusNotFound, "not_found", "preset not found")
		return
	}
	var req imagePayload
	if err := a.decode(w, r, &req); err != nil {
		a.badRequest(w, err)
		return
	}
	src, err := a.decodeImage(req)
	if err != nil {
		a.badRequest(w, err)
		return
	}
	a.generate(w, r, src, domain.CreditReasonGeneration, func(ctx context.Context) (pipeline.FinalPrompt, error) {
		return a.Pipeline.GenerateFromPreset(ctx, presetID)
	})
}

// ImagesRefine edits a previous result with a free-text instruction. The
// instruction is validated and screened before any credit is spent.
func (a *App) ImagesRefine(w http.ResponseWriter, r *http.Request) {
	if a.currentUserID(r) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req refineRequest
	if err := a.decode(w, r, &req); err != nil {
		a.badRequest(w, err)
		return
	}
	if _, err := a.Pipeline.ScreenRefinement(req.LastPrompt, req.Instruction); err != nil {
		a.fail(w, r, err)
		return
	}
	src, err := a.decodeImage(req.imagePayload)
	if err != nil {
		a.badRequest(w, err)
		return
	}
	a.generate(w, r, src, domain.CreditReasonRefinement, func(ctx context.Context) (pipeline.FinalPrompt, error) {
		return a.Pipeline.Refine(ctx, req.LastPrompt, req.Instruction)
	})
}

// generate charges the account, resolves the prompt, renders the image and
// refunds the charge when any step after the deduction fails.
func (a *App) generate(w http.ResponseWriter, r *http.Request, src domain.Image, reason domain.CreditReason, prompt func(context.Context) (pipeline.FinalPrompt, error)) {
	ctx := r.Context()
	userID := a.currentUserID(r)
	ref := middleware.RequestIDFromContext(ctx)

	if _, err := a.Credits.EnsureAccount(ctx, userID, middleware.UserEmailFromContext(ctx), a.signupCredits); err != nil {
		a.fail(w, r, err)
		return
	}
	balance, err := a.Credits.Deduct(ctx, userID, a.generationCost, reason, ref)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	endpoint := endpointPrompt
	if reason == domain.CreditReasonRefinement {
		endpoint = endpointRefine
	}
	started := a.now()
	fp, err := prompt(ctx)
	if expansionAttempted(fp, err) {
		a.record(r, usage.TextCall(endpoint, fp.MetaPrompt, fp.Text), started, err)
	}
	if err != nil {
		a.refund(r, userID, ref)
		a.fail(w, r, err)
		return
	}

	started = a.now()
	img, err := a.Pipeline.RenderImage(ctx, src, fp.Text)
	a.record(r, usage.ImageCall(endpointImage, fp.Text), started, err)
	if err != nil {
		a.refund(r, userID, ref)
		a.fail(w, r, err)
		return
	}

	started = a.now()
	suggestions := a.Pipeline.Suggestions(ctx, fp.Text)
	if len(suggestions) > 0 {
		a.record(r, usage.TextCall(endpointSuggestions, fp.Text, strings.Join(suggestions, "\n")), started, nil)
	}

	a.json(w, http.StatusOK, imageResponse{
		Image:            base64.StdEncoding.EncodeToString(img.Data),
		MIMEType:         img.MIMEType,
		Prompt:           fp.Text,
		Source:           fp.Source,
		PresetID:         fp.PresetID,
		Suggestions:      suggestions,
		CreditsRemaining: balance,
		Verdict:          fp.Verdict,
	})
}

func (a *App) refund(r *http.Request, userID, ref string) {
	ctx := context.WithoutCancel(r.Context())
	if _, err := a.Credits.Add(ctx, userID, a.generationCost, domain.CreditReasonRefund, ref); err != nil {
		a.Logger.Error().Err(err).
			Str("user_id", userID).
			Str("request_id", ref).
			Msg("credit refund failed")
	}
}
