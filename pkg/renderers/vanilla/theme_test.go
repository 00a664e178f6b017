package vanilla_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-notegen/pkg/form"
	"github.com/goliatone/go-notegen/pkg/renderers/vanilla"
	"github.com/goliatone/go-notegen/pkg/testsupport"
)

func TestThemeFromManifest_MergesVariant(t *testing.T) {
	manifest, err := vanilla.LoadThemeManifest(filepath.Join("testdata", "theme.yaml"))
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}

	cfg, err := vanilla.ThemeFromManifest(manifest, "night")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}
	if cfg.Theme != "ward" || cfg.Variant != "night" {
		t.Fatalf("unexpected theme identity %q/%q", cfg.Theme, cfg.Variant)
	}

	wantVars := map[string]string{
		"--accent":  "#0f766e",
		"--danger":  "#f43f5e",
		"--surface": "#111827",
	}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.AssetURL(vanilla.StylesheetAsset); got != "/assets/themes/ward/ward-night.css" {
		t.Fatalf("unexpected stylesheet url %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("unknown asset must resolve empty, got %q", got)
	}

	base, err := vanilla.ThemeFromManifest(manifest, "")
	if err != nil {
		t.Fatalf("resolve base theme: %v", err)
	}
	if base.CSSVars["--danger"] != "#9f1239" {
		t.Fatalf("base theme must keep base tokens, got %q", base.CSSVars["--danger"])
	}

	if _, err := vanilla.ThemeFromManifest(manifest, "dusk"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestRenderer_Theme(t *testing.T) {
	gen := newGenerator(t)
	cfg := &theme.RendererConfig{
		Theme:   "ward",
		Variant: "night",
		Tokens: map[string]string{
			"class.narrative": "ward-note",
			"class.unknown":   "ignored",
		},
		CSSVars: map[string]string{
			"--danger": "#f43f5e",
		},
		AssetURL: func(key string) string {
			if key == vanilla.StylesheetAsset {
				return "/themes/ward/ward.css"
			}
			return ""
		},
	}

	renderer, err := vanilla.New(vanilla.WithStylesheet("/assets/notegen.css"), vanilla.WithTheme(cfg))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	values := testsupport.DischargeValues()
	state := form.NewState(gen.Schema(), form.WithInitialValues(values))
	outcome := gen.FromResult(state.Result())

	html := renderState(t, renderer, state, outcome.Narrative, true)
	for _, want := range []string{
		`<html lang="en" data-theme="ward" data-theme-variant="night">`,
		`<link rel="stylesheet" href="/themes/ward/ward.css">`,
		"--danger: #f43f5e;",
		`<section class="ward-note">`,
		`<form class="notegen-form"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}
	if strings.Contains(html, "/assets/notegen.css") || strings.Contains(html, "ignored") {
		t.Fatalf("theme must replace the stylesheet and skip unknown classes\n%s", html)
	}
}

func TestRenderer_NoThemeKeepsDefaults(t *testing.T) {
	gen := newGenerator(t)
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	html := renderState(t, renderer, form.NewState(gen.Schema()), "", false)
	if !strings.Contains(html, `<html lang="en">`) {
		t.Fatalf("unthemed page must not carry theme attributes\n%s", html)
	}
	if strings.Contains(html, ":root") {
		t.Fatalf("unthemed page must not emit css variables\n%s", html)
	}
}
