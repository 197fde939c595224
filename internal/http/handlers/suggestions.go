package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"icona/internal/usage"
)

type suggestionsRequest struct {
	Prompt string `json:"prompt"`
}

func (a *App) Suggestions(w http.ResponseWriter, r *http.Request) {
	if a.currentUserID(r) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req suggestionsRequest
	if err := a.decode(w, r, &req); err != nil {
		a.badRequest(w, err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.badRequest(w, fmt.Errorf("%w: prompt is required", errBadPayload))
		return
	}
	started := a.now()
	items := a.Pipeline.Suggestions(r.Context(), req.Prompt)
	// An empty list means the source failed or is absent.
	if len(items) > 0 {
		a.record(r, usage.TextCall(endpointSuggestions, req.Prompt, strings.Join(items, "\n")), started, nil)
	}
	a.json(w, http.StatusOK, map[string]any{"suggestions": items})
}

// Captions writes a share caption for a generated image. It is free of charge.
func (a *App) Captions(w http.ResponseWriter, r *http.Request) {
	if a.currentUserID(r) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	if a.Captioner == nil {
		a.error(w, http.StatusServiceUnavailable, "unavailable", "captions are not configured")
		return
	}
	var req imagePayload
	if err := a.decode(w, r, &req); err != nil {
		a.badRequest(w, err)
		return
	}
	img, err := a.decodeImage(req)
	if err != nil {
		a.badRequest(w, err)
		return
	}
	started := a.now()
	caption, err := a.Captioner.Caption(r.Context(), img)
	a.record(r, usage.TextCall(endpointCaption, "", caption), started, err)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"caption": caption})
}
