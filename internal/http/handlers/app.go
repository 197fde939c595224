package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"icona/internal/domain"
	"icona/internal/middleware"
	"icona/internal/pipeline"
	"icona/internal/providers/genai"
	"icona/internal/usage"
)

// Captioner writes a social caption for a finished image.
type Captioner interface {
	Caption(ctx context.Context, img domain.Image) (string, error)
}

// Deps are the collaborators an App is built from.
type Deps struct {
	Pipeline  *pipeline.Pipeline
	Credits   domain.CreditRepository
	Usage     *usage.Tracker
	Captioner Captioner
	Logger    zerolog.Logger

	// UsageStats backs the admin usage summary.
	UsageStats domain.UsageRepository
	AdminIDs   []string

	SignupCredits  int
	GenerationCost int
	MaxUploadBytes int64
}

type App struct {
	Pipeline   *pipeline.Pipeline
	Credits    domain.CreditRepository
	Usage      *usage.Tracker
	UsageStats domain.UsageRepository
	Captioner  Captioner
	Logger     zerolog.Logger

	admins         map[string]struct{}
	signupCredits  int
	generationCost int
	maxUploadBytes int64
	maxBodyBytes   int64
	now            func() time.Time
}

const (
	defaultMaxUploadBytes = 10 << 20
	// base64 inflates by 4/3; leave headroom for the rest of the JSON body.
	jsonEnvelopeSlack = 64 << 10
)

func NewApp(d Deps) *App {
	cost := d.GenerationCost
	if cost < 1 {
		cost = 1
	}
	upload := d.MaxUploadBytes
	if upload <= 0 {
		upload = defaultMaxUploadBytes
	}
	admins := make(map[string]struct{}, len(d.AdminIDs))
	for _, id := range d.AdminIDs {
		admins[id] = struct{}{}
	}
	return &App{
		Pipeline:       d.Pipeline,
		Credits:        d.Credits,
		Usage:          d.Usage,
		UsageStats:     d.UsageStats,
		Captioner:      d.Captioner,
		Logger:         d.Logger,
		admins:         admins,
		signupCredits:  d.SignupCredits,
		generationCost: cost,
		maxUploadBytes: upload,
		maxBodyBytes:   (upload+2)/3*4 + jsonEnvelopeSlack,
		now:            time.Now,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, errorBody{Error: errorDetail{Code: errCode, Message: message}})
}

// fail maps domain and provider errors onto the JSON error envelope.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := classify(err)
	evt := a.Logger.Warn()
	if status >= http.StatusInternalServerError {
		evt = a.Logger.Error()
	}
	evt.Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg("request failed")
	a.error(w, status, code, msg)
}

func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInsufficientCredits):
		return http.StatusPaymentRequired, "insufficient_credits", "not enough credits for this request"
	case errors.Is(err, domain.ErrUnsafePrompt):
		return http.StatusUnprocessableEntity, "unsafe_prompt", "the request was rejected by the prompt safety check"
	case errors.Is(err, domain.ErrInvalidPrompt):
		return http.StatusBadRequest, "invalid_prompt", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, domain.ErrNotEligible):
		return http.StatusConflict, "not_eligible", "weekly credit already claimed"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", "missing user context"
	case errors.Is(err, genai.ErrRateLimited):
		return http.StatusTooManyRequests, "upstream_rate_limited", "the image service is busy, please try again shortly"
	case errors.Is(err, genai.ErrInvalidArgument):
		return http.StatusUnprocessableEntity, "upstream_rejected", "the image service rejected the request"
	case errors.Is(err, pipeline.ErrNoImageEditor):
		return http.StatusServiceUnavailable, "unavailable", "image generation is not configured"
	case errors.Is(err, pipeline.ErrPromptGeneration):
		return http.StatusBadGateway, "prompt_generation_failed", "failed to generate the image prompt"
	case errors.Is(err, pipeline.ErrImageGeneration), errors.Is(err, domain.ErrProviderFailure):
		return http.StatusBadGateway, "image_generation_failed", "failed to generate the image"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// decode reads a JSON body capped at the upload limit.
func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, a.maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: request body exceeds %d bytes", errBodyTooLarge, tooLarge.Limit)
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", errBadPayload)
		}
		return fmt.Errorf("%w: %v", errBadPayload, err)
	}
	return nil
}

var (
	errBadPayload   = errors.New("invalid payload")
	errBodyTooLarge = errors.New("payload too large")
)

func (a *App) badRequest(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		a.error(w, http.StatusRequestEntityTooLarge, "payload_too_large", err.Error())
		return
	}
	a.error(w, http.StatusBadRequest, "bad_request", err.Error())
}

// record stamps request metadata onto ev and hands it to the tracker.
func (a *App) record(r *http.Request, ev domain.UsageEvent, started time.Time, err error) {
	if a.Usage == nil {
		return
	}
	ev.AccountID = a.currentUserID(r)
	ev.RequestID = middleware.RequestIDFromContext(r.Context())
	ev.Success = err == nil
	ev.LatencyMS = int(a.now().Sub(started).Milliseconds())
	if err != nil {
		if ev.Properties == nil {
			ev.Properties = map[string]any{}
		}
		ev.Properties["error"] = err.Error()
	}
	a.Usage.Record(context.WithoutCancel(r.Context()), ev)
}
