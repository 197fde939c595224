package handlers

import (
	"net/http"

	"icona/internal/catalog"
)

// presetView hides literal prompt text but tells the client a preset skips
// the expansion step.
type presetView struct {
	catalog.Preset
	LiteralPrompt bool `json:"literal_prompt"`
}

type catalogResponse struct {
	Moods          []catalog.Mood          `json:"moods"`
	VitalityLevels []catalog.VitalityLevel `json:"vitality_levels"`
	Archetypes     []catalog.Archetype     `json:"archetypes"`
	Eras           []catalog.Era           `json:"eras"`
	Styles         []catalog.Style         `json:"styles"`
	Presets        []presetView            `json:"presets"`
}

func (a *App) Catalog(w http.ResponseWriter, r *http.Request) {
	reg := a.Pipeline.Catalog()
	presets := reg.Presets()
	views := make([]presetView, 0, len(presets))
	for _, p := range presets {
		views = append(views, presetView{Preset: p, LiteralPrompt: p.HasLiteralPrompt()})
	}
	a.json(w, http.StatusOK, catalogResponse{
		Moods:          reg.Moods(),
		VitalityLevels: reg.VitalityLevels(),
		Archetypes:     reg.Archetypes(),
		Eras:           reg.Eras(),
		Styles:         reg.Styles(),
		Presets:        views,
	})
}
