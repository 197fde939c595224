package promptbuilder

import (
	"fmt"
	"strings"

	"icona/internal/catalog"
)

const (
	defaultMoodLabel     = "Default"
	defaultVitalityLabel = "Off"
	defaultStyleLabel    = "Default Photo"

	genericTimeElapsed = "a significant amount of time"
	defaultTimeElapsed = "2 hours into the experience"

	portraitMandate  = "The final image composition MUST have a vertical 4:5 portrait aspect ratio."
	immersiveMandate = "The final image composition MUST have a 1:1 square aspect ratio."
)

var timeElapsedByEra = map[string]string{
	"speakeasy_1920s":  "3 hours 20 minutes into the evening",
	"rockstar_1980s":   "90 minutes into performance, 5 minute break",
	"vogue_photoshoot": "2 hours 15 minutes into a high-fashion shoot",
	"studio_54":        "4 hours into dancing, 2am energy",
	"old_hollywood":    "45 minutes into a glamorous premiere event",
	"regency_ball":     "2 hours into a grand ball, between dances",
}

// MetaPrompt is the instruction document for the text model together with
// the resolved selection summary it was built from.
type MetaPrompt struct {
	Text       string   `json:"meta_prompt"`
	Selection  []string `json:"selection"`
	StyleLabel string   `json:"style_label"`
	Thematic   bool     `json:"thematic"`
}

func (m MetaPrompt) String() string { return m.Text }

// Compiler turns Options into a MetaPrompt. It holds no mutable state and is
// safe for concurrent use.
type Compiler struct {
	catalog *catalog.Registry
}

func NewCompiler(reg *catalog.Registry) *Compiler {
	return &Compiler{catalog: reg}
}

type resolved struct {
	era       catalog.Era
	hasEra    bool
	setting   catalog.Setting
	hasSet    bool
	mood      catalog.Mood
	hasMood   bool
	vitality  catalog.VitalityLevel
	hasVital  bool
	style     catalog.Style
	hasStyle  bool
	archetype catalog.Archetype
	manual    string
}

func (c *Compiler) resolve(opts Options) resolved {
	var r resolved
	r.era, r.hasEra = c.catalog.FindEra(opts.EraID)
	if settingID, ok := opts.SettingID.Get(); ok && r.hasEra {
		r.setting, r.hasSet = c.catalog.FindSetting(r.era, settingID)
	}
	r.mood, r.hasMood = c.catalog.FindMood(opts.MoodID)
	r.vitality, r.hasVital = c.catalog.FindVitalityLevel(opts.VitalityLevelID)
	r.style, r.hasStyle = c.catalog.FindStyle(opts.StyleID)
	r.archetype, _ = c.catalog.FindArchetype(opts.ArchetypeID)
	r.manual = opts.ManualEraText.OrElse("")
	return r
}

// Compile never fails: unresolved references fall back to defaults or are
// left out, and an empty Options still yields a complete document.
func (c *Compiler) Compile(opts Options) MetaPrompt {
	opts = opts.Normalize()
	r := c.resolve(opts)

	thematic := (r.hasEra && r.era.IsThematic) || (opts.EraID == catalog.EraManual && r.manual != "")
	styleLabel := c.styleLabel(r, thematic)
	selection := selectionLines(r, styleLabel, strings.TrimSpace(opts.AdditionalDetails))

	return MetaPrompt{
		Text:       render(r, opts, selection),
		Selection:  selection,
		StyleLabel: styleLabel,
		Thematic:   thematic,
	}
}

func (c *Compiler) styleLabel(r resolved, thematic bool) string {
	label := defaultStyleLabel
	if r.hasStyle {
		label = r.style.Label
	}
	if !thematic {
		return label
	}
	theme := ""
	if p, ok := c.catalog.PresetByManualText(r.manual); ok {
		theme = p.Label
	} else if r.hasEra {
		theme = r.era.Label
	}
	if theme == "" {
		return label
	}
	prefix := defaultStyleLabel
	if r.hasStyle {
		prefix = r.style.TypePrefix()
	}
	return fmt.Sprintf("%s Style (%s)", theme, prefix)
}

func selectionLines(r resolved, styleLabel, details string) []string {
	mood := defaultMoodLabel
	if r.hasMood {
		mood = r.mood.Label
	}
	vitality := defaultVitalityLabel
	if r.hasVital {
		vitality = r.vitality.Label
	}
	lines := []string{
		"- Mood: " + mood,
		"- Vitality Level: " + vitality,
		"- Style: " + styleLabel,
	}
	switch {
	case r.manual != "":
		lines = append(lines, "- Manual Vision: "+r.manual)
	case r.hasEra:
		lines = append(lines, "- Era: "+r.era.Label)
		if r.era.Context != "" {
			lines = append(lines, "  - Core Concept: "+r.era.Context)
		}
		if r.hasSet {
			lines = append(lines, "- Setting: "+r.setting.Label)
			if r.setting.Context != "" {
				lines = append(lines, "  - Details: "+r.setting.Context)
			}
		}
	}
	if details != "" {
		lines = append(lines, "- Additional Details: "+details)
	}
	return lines
}

// TimeElapsed returns the lived-in duration phrase for an era id.
func TimeElapsed(eraID string) string {
	if eraID == "" || eraID == catalog.EraManual {
		return genericTimeElapsed
	}
	if phrase, ok := timeElapsedByEra[eraID]; ok {
		return phrase
	}
	return defaultTimeElapsed
}

// AspectMandate returns the composition constraint for mode. The zero Mode
// is treated as portrait.
func AspectMandate(mode catalog.Mode) string {
	if mode == catalog.ModeImmersive {
		return immersiveMandate
	}
	return portraitMandate
}
