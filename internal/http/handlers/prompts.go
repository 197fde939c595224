package handlers

import (
	"errors"
	"net/http"

	"icona/internal/pipeline"
	"icona/internal/promptbuilder"
	"icona/internal/sanitize"
	"icona/internal/usage"
)

type metaPromptResponse struct {
	MetaPrompt string           `json:"meta_prompt"`
	Selection  []string         `json:"selection"`
	StyleLabel string           `json:"style_label"`
	Thematic   bool             `json:"thematic"`
	Verdict    sanitize.Verdict `json:"verdict"`
}

// PromptMeta compiles a selection without calling any model.
func (a *App) PromptMeta(w http.ResponseWriter, r *http.Request) {
	var opts promptbuilder.Options
	if err := a.decode(w, r, &opts); err != nil {
		a.badRequest(w, err)
		return
	}
	meta, verdict, err := a.Pipeline.Compile(opts)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	selection := meta.Selection
	if selection == nil {
		selection = []string{}
	}
	a.json(w, http.StatusOK, metaPromptResponse{
		MetaPrompt: meta.Text,
		Selection:  selection,
		StyleLabel: meta.StyleLabel,
		Thematic:   meta.Thematic,
		Verdict:    verdict,
	})
}

// PromptFinal returns the prompt that would be sent to the image model.
func (a *App) PromptFinal(w http.ResponseWriter, r *http.Request) {
	if a.currentUserID(r) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var opts promptbuilder.Options
	if err := a.decode(w, r, &opts); err != nil {
		a.badRequest(w, err)
		return
	}
	started := a.now()
	fp, err := a.Pipeline.Build(r.Context(), opts)
	if expansionAttempted(fp, err) {
		a.record(r, usage.TextCall(endpointPrompt, fp.MetaPrompt, fp.Text), started, err)
	}
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, fp)
}

const (
	endpointPrompt      = "prompt"
	endpointImage       = "image"
	endpointRefine      = "refine"
	endpointSuggestions = "suggestions"
	endpointCaption     = "caption"
)

func expansionAttempted(fp pipeline.FinalPrompt, err error) bool {
	return fp.Source == pipeline.SourceModel || errors.Is(err, pipeline.ErrPromptGeneration)
}
