package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-notegen/pkg/render"
	rendertemplate "github.com/goliatone/go-notegen/pkg/render/template"
	gotemplate "github.com/goliatone/go-notegen/pkg/render/template/gotemplate"
	theme "github.com/goliatone/go-theme"
)

// DefaultTitle is used when RenderOptions.Title is empty.
const DefaultTitle = "Discharge Note"

const pageTemplate = "page.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	inlineStyles     bool
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide page.tmpl and field.tmpl at its root.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet links an external stylesheet from the page head.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// WithTheme applies a resolved go-theme configuration: "class.*" tokens
// replace chrome classes, CSS variables are emitted in the page head and the
// "vanilla.stylesheet" asset replaces the configured stylesheet.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithDefaultStyles inlines the bundled stylesheet into the page head.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// Renderer renders a render.Page as a standalone HTML document.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	stylesheet   string
	inlineStyles string
	themeName    string
	themeVariant string
	themeVars    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	if err := renderer.GlobalContext(map[string]any{"classes": themeClasses(cfg.theme)}); err != nil {
		return nil, fmt.Errorf("vanilla renderer: register chrome classes: %w", err)
	}

	r := &Renderer{
		templates:  renderer,
		stylesheet: cfg.stylesheet,
	}
	if cfg.theme != nil {
		r.themeName = cfg.theme.Theme
		r.themeVariant = cfg.theme.Variant
		r.themeVars = cssVarsStyle(cfg.theme.CSSVars)
		if href := themeStylesheet(cfg.theme); href != "" {
			r.stylesheet = href
		}
	}
	if cfg.inlineStyles {
		r.inlineStyles = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full document. Values, labels and the narrative are
// escaped by the template engine.
func (r *Renderer) Render(ctx context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := options.Title
	if title == "" {
		title = DefaultTitle
	}

	result, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"page":          page,
		"title":         title,
		"action":        options.ActionOrDefault(),
		"stylesheet":    r.stylesheet,
		"inline_styles": r.inlineStyles,
		"theme_name":    r.themeName,
		"theme_variant": r.themeVariant,
		"theme_vars":    r.themeVars,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
