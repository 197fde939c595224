package promptbuilder

import (
	"icona/internal/catalog"
	"icona/internal/domain"
)

// Options is the per-request selection handed to the compiler. Ids that do
// not resolve against the catalog are treated as absent.
type Options struct {
	MoodID               string       `json:"mood_id"`
	VitalityLevelID      string       `json:"vitality_level_id"`
	ArchetypeID          string       `json:"archetype_id"`
	EraID                string       `json:"era_id"`
	SettingID            domain.Text  `json:"setting_id"`
	ManualEraText        domain.Text  `json:"manual_era_text"`
	StyleID              string       `json:"style_id"`
	AdditionalDetails    string       `json:"additional_details"`
	Mode                 catalog.Mode `json:"mode"`
	ProfessionalPresetID domain.Text  `json:"professional_preset_id"`
}

// Normalize folds blank optional fields into absent ones and defaults Mode.
func (o Options) Normalize() Options {
	o.SettingID = domain.NonBlank(o.SettingID)
	o.ManualEraText = domain.NonBlank(o.ManualEraText)
	o.ProfessionalPresetID = domain.NonBlank(o.ProfessionalPresetID)
	if o.Mode == "" {
		o.Mode = catalog.ModePortrait
	}
	return o
}

// FromPreset expands a preset into the selection it bundles.
func FromPreset(p catalog.Preset) Options {
	return Options{
		MoodID:            p.MoodID,
		VitalityLevelID:   p.VitalityLevelID,
		ArchetypeID:       p.ArchetypeID,
		EraID:             p.EraID,
		SettingID:         domain.SomeText(p.SettingID),
		ManualEraText:     domain.SomeText(p.ManualEraText),
		StyleID:           p.StyleID,
		AdditionalDetails: p.AdditionalDetails,
		Mode:              p.Mode,
	}.Normalize()
}
