package vanilla_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-notegen"
	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/form"
	"github.com/goliatone/go-notegen/pkg/render"
	"github.com/goliatone/go-notegen/pkg/renderers/vanilla"
	"github.com/goliatone/go-notegen/pkg/testsupport"
)

func renderState(t *testing.T, renderer *vanilla.Renderer, state *form.State, narrative string, submitted bool) string {
	t.Helper()

	page := render.NewPage(state, narrative, submitted)
	out, err := renderer.Render(testsupport.Context(), page, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func newGenerator(t *testing.T) *notegen.Generator {
	t.Helper()
	gen, err := notegen.New()
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	return gen
}

func TestRenderer_EmptyForm(t *testing.T) {
	gen := newGenerator(t)
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	html := renderState(t, renderer, form.NewState(gen.Schema()), "", false)

	for _, want := range []string{
		"<title>Discharge Note</title>",
		`<form class="notegen-form" method="post" action="/" novalidate>`,
		`<select id="ng-gender" name="gender">`,
		`<option value="Male">Male</option>`,
		`<textarea id="ng-symptoms" name="symptoms" rows="3"></textarea>`,
		`placeholder="mm/dd/yyyy"`,
		"Admission H&amp;P",
		"<small>(optional)</small>",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}
	if strings.Contains(html, "notegen-error") {
		t.Fatalf("untouched form must not show inline errors")
	}
	if strings.Contains(html, "notegen-narrative") {
		t.Fatalf("empty form must not show a narrative")
	}
}

func TestRenderer_SubmittedInvalidShowsErrors(t *testing.T) {
	gen := newGenerator(t)
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	values := testsupport.DischargeValues()
	values["age"] = "12.5"
	state := form.NewState(gen.Schema(), form.WithInitialValues(values))
	state.TouchAll()

	html := renderState(t, renderer, state, "", true)

	for _, want := range []string{
		`<div class="notegen-field notegen-field--invalid">`,
		`<p class="notegen-error" id="ng-age-error">Must be a whole number</p>`,
		`value="12.5"`,
		"Fix the highlighted fields",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q\n%s", want, html)
		}
	}
}

func TestRenderer_ValidShowsEscapedNarrative(t *testing.T) {
	gen := newGenerator(t)
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	values := testsupport.DischargeValues()
	values["labs"] = "K+ > 5"
	state := form.NewState(gen.Schema(), form.WithInitialValues(values))
	outcome := gen.FromResult(state.Result())
	if !outcome.Rendered {
		t.Fatalf("expected narrative for valid values: %+v", outcome.Result.Errors())
	}

	html := renderState(t, renderer, state, outcome.Narrative, true)

	if !strings.Contains(html, `<section class="notegen-narrative">`) {
		t.Fatalf("expected narrative section\n%s", html)
	}
	if !strings.Contains(html, "K+ &gt; 5") {
		t.Fatalf("expected escaped lab value in narrative\n%s", html)
	}
	if !strings.Contains(html, `<option value="Female" selected>Female</option>`) {
		t.Fatalf("expected Female selected\n%s", html)
	}
	if !strings.Contains(html, "Tue Jan 02 2024") {
		t.Fatalf("expected formatted admit date\n%s", html)
	}
}

func TestRenderer_Styles(t *testing.T) {
	gen := newGenerator(t)
	renderer, err := vanilla.New(vanilla.WithDefaultStyles(), vanilla.WithStylesheet("/assets/custom.css"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	html := renderState(t, renderer, form.NewState(gen.Schema()), "", false)
	if !strings.Contains(html, `<link rel="stylesheet" href="/assets/custom.css">`) {
		t.Fatalf("expected stylesheet link\n%s", html)
	}
	if !strings.Contains(html, "<style>.notegen-page") {
		t.Fatalf("expected inline styles\n%s", html)
	}
}

func TestRenderer_CustomCatalogAndTitle(t *testing.T) {
	fields := []catalog.FieldSpec{
		{ID: "name", Label: "Name"},
	}
	gen, err := notegen.New(notegen.WithFields(fields), notegen.WithTemplateSource("Hello {{name}}"))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	state := form.NewState(gen.Schema())
	out, err := renderer.Render(testsupport.Context(), render.NewPage(state, "", false), render.RenderOptions{
		Title:  "Greeting",
		Action: "/greet",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<title>Greeting</title>") || !strings.Contains(html, `action="/greet"`) {
		t.Fatalf("expected custom title and action\n%s", html)
	}
	if !strings.Contains(html, `<input type="text" id="ng-name" name="name" value="">`) {
		t.Fatalf("expected text input\n%s", html)
	}
}

func TestAssetsFS(t *testing.T) {
	data, err := fs.ReadFile(vanilla.AssetsFS(), vanilla.StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".notegen-field") {
		t.Fatalf("unexpected stylesheet contents")
	}
}
