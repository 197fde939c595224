package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StyleKind separates photographic styles from illustrated ones.
type StyleKind string

const (
	StyleKindPhoto        StyleKind = "photo"
	StyleKindIllustration StyleKind = "illustration"
)

// Noun is the word used when asking the model for a "new <noun>".
func (k StyleKind) Noun() string {
	if k == StyleKindIllustration {
		return "illustration"
	}
	return "photograph"
}

// PresetCategory groups quick hits in the picker.
type PresetCategory string

const (
	PresetCategoryCreative     PresetCategory = "creative"
	PresetCategoryProfessional PresetCategory = "professional"
)

// Mode selects the output framing of the generated image.
type Mode string

const (
	ModePortrait  Mode = "portrait"
	ModeImmersive Mode = "immersive"
)

// ParseMode accepts only the two supported framings.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModePortrait:
		return ModePortrait, nil
	case ModeImmersive:
		return ModeImmersive, nil
	default:
		return "", fmt.Errorf("unsupported transformation mode %q", raw)
	}
}

// UnmarshalJSON rejects framings other than portrait and immersive. An empty
// string decodes to portrait.
func (m *Mode) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*m = ModePortrait
		return nil
	}
	parsed, err := ParseMode(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Style defines the rendering aesthetic and its paired descriptors.
type Style struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Kind     StyleKind `json:"kind"`
	Positive string    `json:"positive"`
	Negative string    `json:"negative"`
}

// TypePrefix is the part of the label before the first colon,
// e.g. "Photo Real" for "Photo Real: Candid iPhone".
func (s Style) TypePrefix() string {
	prefix, _, _ := strings.Cut(s.Label, ":")
	return prefix
}

// Setting is a concrete sub-scene of one era.
type Setting struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Context string `json:"context"`
}

// Era is a time or aesthetic period with its owned settings.
type Era struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	IsThematic bool      `json:"is_thematic"`
	Context    string    `json:"context"`
	Settings   []Setting `json:"settings"`
}

// Mood is an emotional or micro-expression directive.
type Mood struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Context string `json:"context"`
}

// VitalityLevel is one step of the retouching intensity scale.
type VitalityLevel struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Context string `json:"context"`
}

// Archetype adjusts the apparent age of the subject.
type Archetype struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Context string `json:"context"`
}

// Preset (a "quick hit") bundles a complete selection. When ManualEraText is
// non-empty it is the final image prompt and no model expansion happens.
type Preset struct {
	ID                string         `json:"id"`
	Label             string         `json:"label"`
	Category          PresetCategory `json:"category"`
	Emoji             string         `json:"emoji,omitempty"`
	Description       string         `json:"description,omitempty"`
	MoodID            string         `json:"mood_id"`
	VitalityLevelID   string         `json:"vitality_level_id"`
	ArchetypeID       string         `json:"archetype_id"`
	EraID             string         `json:"era_id"`
	SettingID         string         `json:"setting_id,omitempty"`
	ManualEraText     string         `json:"-"`
	StyleID           string         `json:"style_id"`
	AdditionalDetails string         `json:"additional_details"`
	Mode              Mode           `json:"mode"`
}

// HasLiteralPrompt reports whether the preset ships a pre-authored prompt.
func (p Preset) HasLiteralPrompt() bool {
	return p.ManualEraText != ""
}

// Data is the raw table set a Registry is built from.
type Data struct {
	Moods          []Mood
	VitalityLevels []VitalityLevel
	Archetypes     []Archetype
	Eras           []Era
	Styles         []Style
	Presets        []Preset
}
