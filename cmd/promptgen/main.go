// Command promptgen prints the option catalog, compiles selections into the
// meta-prompt and, with -expand, asks Gemini for the final image prompt.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"icona/internal/catalog"
	"icona/internal/domain"
	"icona/internal/infra"
	"icona/internal/pipeline"
	"icona/internal/promptbuilder"
	"icona/internal/providers/genai"
	"icona/internal/sanitize"
)

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// offlineText refuses every call; it keeps the pipeline usable when no
// expansion was requested.
type offlineText struct{}

func (offlineText) GenerateText(context.Context, string) (string, error) {
	return "", errors.New("text model not configured; pass -expand with GEMINI_API_KEY set")
}

func run(ctx context.Context, args []string, out io.Writer, getenv func(string) string) error {
	fs := flag.NewFlagSet("promptgen", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		list    = fs.Bool("list", false, "print the option catalog and exit")
		asJSON  = fs.Bool("json", false, "emit JSON instead of text")
		preset  = fs.String("preset", "", "resolve a preset by id")
		expand  = fs.Bool("expand", false, "call the text model for the final prompt (needs GEMINI_API_KEY)")
		policy  = fs.String("policy", "warn", "prompt injection policy: warn or block")
		timeout = fs.Duration("timeout", 90*time.Second, "upstream timeout for -expand")
	)
	var (
		opts     promptbuilder.Options
		setting  string
		manual   string
		presetID string
		mode     string
	)
	fs.StringVar(&opts.MoodID, "mood", "", "mood id")
	fs.StringVar(&opts.VitalityLevelID, "vitality", "", "vitality level id")
	fs.StringVar(&opts.ArchetypeID, "archetype", "", "archetype id")
	fs.StringVar(&opts.EraID, "era", "", "era id")
	fs.StringVar(&setting, "setting", "", "setting id within the era")
	fs.StringVar(&manual, "manual", "", "manual era text")
	fs.StringVar(&opts.StyleID, "style", "", "style id")
	fs.StringVar(&opts.AdditionalDetails, "details", "", "additional details")
	fs.StringVar(&presetID, "professional", "", "professional preset id for the bypass path")
	fs.StringVar(&mode, "mode", "portrait", "portrait or immersive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg := catalog.Default()
	if *list {
		return printCatalog(out, reg, *asJSON)
	}

	parsedMode, err := catalog.ParseMode(mode)
	if err != nil {
		return err
	}
	opts.Mode = parsedMode
	opts.SettingID = domain.SomeText(setting)
	opts.ManualEraText = domain.SomeText(manual)
	opts.ProfessionalPresetID = domain.SomeText(presetID)

	var text pipeline.TextGenerator = offlineText{}
	logger := zerolog.Nop()
	if *expand {
		logger = infra.NewLogger("cli").With().Str("cmd", "promptgen").Logger()
		client, err := genai.NewClient(genai.Options{
			APIKey:  getenv("GEMINI_API_KEY"),
			BaseURL: getenv("GEMINI_BASE_URL"),
			Logger:  logger,
		})
		if err != nil {
			return err
		}
		text = client
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	p, err := pipeline.New(pipeline.Options{
		Catalog:         reg,
		Text:            text,
		InjectionPolicy: sanitize.ParsePolicy(*policy),
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	if *preset != "" {
		qh, ok := reg.FindPreset(*preset)
		if !ok {
			return fmt.Errorf("unknown preset %q", *preset)
		}
		if *expand || qh.HasLiteralPrompt() {
			fp, err := p.GenerateFromPreset(ctx, qh.ID)
			if err != nil {
				return err
			}
			return emit(out, *asJSON, fp)
		}
		opts = promptbuilder.FromPreset(qh)
	}

	if *expand {
		fp, err := p.Build(ctx, opts)
		if err != nil {
			return err
		}
		return emit(out, *asJSON, fp)
	}
	meta, verdict, err := p.Compile(opts)
	if err != nil {
		return err
	}
	if !verdict.Safe {
		fmt.Fprintf(out, "warning: %s\n", verdict.Reason)
	}
	if *asJSON {
		return emit(out, true, meta)
	}
	_, err = fmt.Fprintln(out, meta.Text)
	return err
}

func emit(out io.Writer, asJSON bool, v any) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	switch t := v.(type) {
	case pipeline.FinalPrompt:
		_, err := fmt.Fprintf(out, "[%s] %s\n", t.Source, t.Text)
		return err
	default:
		_, err := fmt.Fprintln(out, v)
		return err
	}
}

type entry struct {
	id, label string
}

func printCatalog(out io.Writer, reg *catalog.Registry, asJSON bool) error {
	if asJSON {
		return emit(out, true, map[string]any{
			"moods":           reg.Moods(),
			"vitality_levels": reg.VitalityLevels(),
			"archetypes":      reg.Archetypes(),
			"eras":            reg.Eras(),
			"styles":          reg.Styles(),
			"presets":         reg.Presets(),
		})
	}

	title := cases.Title(language.English)
	section := func(name string, items []entry) {
		fmt.Fprintf(out, "%s (%d)\n", title.String(name), len(items))
		for _, it := range items {
			fmt.Fprintf(out, "  %-24s %s\n", it.id, it.label)
		}
		fmt.Fprintln(out)
	}

	var moods, vitality, archetypes, eras, styles, presets []entry
	for _, m := range reg.Moods() {
		moods = append(moods, entry{m.ID, m.Label})
	}
	for _, v := range reg.VitalityLevels() {
		vitality = append(vitality, entry{v.ID, v.Label})
	}
	for _, a := range reg.Archetypes() {
		archetypes = append(archetypes, entry{a.ID, a.Label})
	}
	for _, e := range reg.Eras() {
		label := e.Label
		if len(e.Settings) > 0 {
			ids := make([]string, 0, len(e.Settings))
			for _, s := range e.Settings {
				ids = append(ids, s.ID)
			}
			label += " [" + strings.Join(ids, ", ") + "]"
		}
		eras = append(eras, entry{e.ID, label})
	}
	for _, s := range reg.Styles() {
		styles = append(styles, entry{s.ID, s.Label + " (" + string(s.Kind) + ")"})
	}
	for _, p := range reg.Presets() {
		presets = append(presets, entry{p.ID, p.Label + " · " + string(p.Category)})
	}

	section("moods", moods)
	section("vitality levels", vitality)
	section("archetypes", archetypes)
	section("eras", eras)
	section("styles", styles)
	section("quick hits", presets)
	return nil
}
