package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func noEnv(string) string { return "" }

func TestListCatalog(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-list"}, &out, noEnv); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	for _, want := range []string{"Moods (7)", "Vitality Levels (4)", "Eras (22)", "Quick Hits (13)", "old_hollywood", "soundstage, premiere"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCompileSelection(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-era", "old_hollywood", "-setting", "premiere", "-mood", "half_smile", "-mode", "immersive", "-json"}
	if err := run(context.Background(), args, &out, noEnv); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	var meta struct {
		Text     string `json:"meta_prompt"`
		Thematic bool   `json:"thematic"`
	}
	if err := json.Unmarshal(out.Bytes(), &meta); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !meta.Thematic || !strings.Contains(meta.Text, "1:1 square") {
		t.Fatalf("unexpected meta prompt %+v", meta)
	}
}

func TestLiteralPresetNeedsNoModel(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-preset", "ghibli_meadow"}, &out, noEnv); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "[preset] Generate a new illustration") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestExpandRequiresAPIKey(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-expand", "-era", "planet_2077"}, &out, noEnv); err == nil {
		t.Fatal("expected missing api key error")
	}
}

func TestRejectsUnknownInputs(t *testing.T) {
	for _, args := range [][]string{{"-preset", "nope"}, {"-mode", "panorama"}} {
		if err := run(context.Background(), args, &bytes.Buffer{}, noEnv); err == nil {
			t.Fatalf("run(%v) expected error", args)
		}
	}
}
