package catalog

import (
	"errors"
	"fmt"
)

const (
	// EraManual signals free-form user text instead of a catalog era.
	EraManual = "manual"
	// EraSurpriseMe leaves the scene choice to the text model.
	EraSurpriseMe = "surprise_me"
)

// Registry is an immutable, indexed view over a Data table set. Callers
// receive copies of slices so the registry cannot be mutated after New.
type Registry struct {
	data Data

	moods     map[string]int
	vitality  map[string]int
	archetype map[string]int
	eras      map[string]int
	styles    map[string]int
	presets   map[string]int
}

// New indexes the tables and validates referential integrity.
func New(data Data) (*Registry, error) {
	r := &Registry{data: cloneData(data)}
	var errs []error

	r.moods = index(r.data.Moods, func(m Mood) string { return m.ID }, "mood", &errs)
	r.vitality = index(r.data.VitalityLevels, func(v VitalityLevel) string { return v.ID }, "vitality level", &errs)
	r.archetype = index(r.data.Archetypes, func(a Archetype) string { return a.ID }, "archetype", &errs)
	r.eras = index(r.data.Eras, func(e Era) string { return e.ID }, "era", &errs)
	r.styles = index(r.data.Styles, func(s Style) string { return s.ID }, "style", &errs)
	r.presets = index(r.data.Presets, func(p Preset) string { return p.ID }, "preset", &errs)

	for _, era := range r.data.Eras {
		seen := make(map[string]struct{}, len(era.Settings))
		for _, s := range era.Settings {
			if _, dup := seen[s.ID]; dup {
				errs = append(errs, fmt.Errorf("era %q: duplicate setting %q", era.ID, s.ID))
			}
			seen[s.ID] = struct{}{}
		}
	}

	for _, p := range r.data.Presets {
		if p.SettingID == "" {
			continue
		}
		era, ok := r.FindEra(p.EraID)
		if !ok {
			errs = append(errs, fmt.Errorf("preset %q: setting %q given without a known era", p.ID, p.SettingID))
			continue
		}
		if _, ok := r.FindSetting(era, p.SettingID); !ok {
			errs = append(errs, fmt.Errorf("preset %q: setting %q does not belong to era %q", p.ID, p.SettingID, era.ID))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog: %w", errors.Join(errs...))
	}
	return r, nil
}

// MustNew is New for hardcoded tables; it panics on integrity errors.
func MustNew(data Data) *Registry {
	r, err := New(data)
	if err != nil {
		panic(err)
	}
	return r
}

func index[T any](items []T, id func(T) string, kind string, errs *[]error) map[string]int {
	out := make(map[string]int, len(items))
	for i, item := range items {
		key := id(item)
		if key == "" {
			*errs = append(*errs, fmt.Errorf("%s at position %d has an empty id", kind, i))
			continue
		}
		if _, dup := out[key]; dup {
			*errs = append(*errs, fmt.Errorf("duplicate %s id %q", kind, key))
			continue
		}
		out[key] = i
	}
	return out
}

func lookup[T any](items []T, idx map[string]int, id string) (T, bool) {
	var zero T
	i, ok := idx[id]
	if !ok {
		return zero, false
	}
	return items[i], true
}

func (r *Registry) FindEra(id string) (Era, bool) {
	era, ok := lookup(r.data.Eras, r.eras, id)
	if !ok {
		return Era{}, false
	}
	era.Settings = append([]Setting(nil), era.Settings...)
	return era, true
}

// FindSetting searches only the settings owned by era.
func (r *Registry) FindSetting(era Era, id string) (Setting, bool) {
	if id == "" {
		return Setting{}, false
	}
	for _, s := range era.Settings {
		if s.ID == id {
			return s, true
		}
	}
	return Setting{}, false
}

func (r *Registry) FindStyle(id string) (Style, bool) {
	return lookup(r.data.Styles, r.styles, id)
}

func (r *Registry) FindMood(id string) (Mood, bool) {
	return lookup(r.data.Moods, r.moods, id)
}

func (r *Registry) FindVitalityLevel(id string) (VitalityLevel, bool) {
	return lookup(r.data.VitalityLevels, r.vitality, id)
}

func (r *Registry) FindArchetype(id string) (Archetype, bool) {
	return lookup(r.data.Archetypes, r.archetype, id)
}

func (r *Registry) FindPreset(id string) (Preset, bool) {
	return lookup(r.data.Presets, r.presets, id)
}

// PresetByManualText returns the first manual-era preset whose literal text
// equals text exactly. Catalog order decides ties.
func (r *Registry) PresetByManualText(text string) (Preset, bool) {
	if text == "" {
		return Preset{}, false
	}
	for _, p := range r.data.Presets {
		if p.EraID == EraManual && p.ManualEraText == text {
			return p, true
		}
	}
	return Preset{}, false
}

func (r *Registry) Moods() []Mood { return append([]Mood(nil), r.data.Moods...) }

func (r *Registry) VitalityLevels() []VitalityLevel {
	return append([]VitalityLevel(nil), r.data.VitalityLevels...)
}

func (r *Registry) Archetypes() []Archetype { return append([]Archetype(nil), r.data.Archetypes...) }

func (r *Registry) Styles() []Style { return append([]Style(nil), r.data.Styles...) }

func (r *Registry) Presets() []Preset { return append([]Preset(nil), r.data.Presets...) }

func (r *Registry) Eras() []Era {
	out := make([]Era, len(r.data.Eras))
	for i, e := range r.data.Eras {
		e.Settings = append([]Setting(nil), e.Settings...)
		out[i] = e
	}
	return out
}

// PresetsByCategory keeps catalog order.
func (r *Registry) PresetsByCategory(c PresetCategory) []Preset {
	var out []Preset
	for _, p := range r.data.Presets {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func cloneData(d Data) Data {
	out := Data{
		Moods:          append([]Mood(nil), d.Moods...),
		VitalityLevels: append([]VitalityLevel(nil), d.VitalityLevels...),
		Archetypes:     append([]Archetype(nil), d.Archetypes...),
		Styles:         append([]Style(nil), d.Styles...),
		Presets:        append([]Preset(nil), d.Presets...),
		Eras:           make([]Era, len(d.Eras)),
	}
	for i, e := range d.Eras {
		e.Settings = append([]Setting(nil), e.Settings...)
		out.Eras[i] = e
	}
	return out
}
