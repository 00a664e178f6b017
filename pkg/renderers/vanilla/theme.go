package vanilla

import (
	"fmt"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// ChromeClass is a typed identifier for the CSS classes the page emits.
type ChromeClass string

const (
	ClassPage      ChromeClass = "notegen-page"
	ClassHeader    ChromeClass = "notegen-header"
	ClassForm      ChromeClass = "notegen-form"
	ClassField     ChromeClass = "notegen-field"
	ClassInvalid   ChromeClass = "notegen-field--invalid"
	ClassError     ChromeClass = "notegen-error"
	ClassActions   ChromeClass = "notegen-actions"
	ClassNarrative ChromeClass = "notegen-narrative"
	ClassNotice    ChromeClass = "notegen-notice"
)

// ClassTokenPrefix marks theme tokens that replace a chrome class, for
// example "class.page".
const ClassTokenPrefix = "class."

// StylesheetAsset is the theme asset key resolved for the page stylesheet.
const StylesheetAsset = "vanilla.stylesheet"

// themeClasses returns the chrome classes with any "class.*" theme tokens
// applied on top.
func themeClasses(cfg *theme.RendererConfig) map[string]string {
	classes := map[string]string{
		"page":      string(ClassPage),
		"header":    string(ClassHeader),
		"form":      string(ClassForm),
		"field":     string(ClassField),
		"invalid":   string(ClassInvalid),
		"error":     string(ClassError),
		"actions":   string(ClassActions),
		"narrative": string(ClassNarrative),
		"notice":    string(ClassNotice),
	}
	if cfg == nil {
		return classes
	}
	for key, value := range cfg.Tokens {
		name, ok := strings.CutPrefix(key, ClassTokenPrefix)
		if !ok {
			continue
		}
		if _, known := classes[name]; !known || strings.TrimSpace(value) == "" {
			continue
		}
		classes[name] = strings.TrimSpace(value)
	}
	return classes
}

// themeStylesheet resolves the stylesheet href from the theme assets,
// returning "" when the theme does not ship one.
func themeStylesheet(cfg *theme.RendererConfig) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(cfg.AssetURL(StylesheetAsset))
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// LoadThemeManifest reads a go-theme manifest from a YAML or JSON file.
func LoadThemeManifest(filename string) (*theme.Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: read theme manifest: %w", err)
	}
	manifest := &theme.Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("vanilla renderer: parse theme manifest %s: %w", filename, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return nil, fmt.Errorf("vanilla renderer: theme manifest %s has no name", filename)
	}
	return manifest, nil
}

// ThemeFromManifest resolves a manifest and optional variant into the
// renderer configuration: variant tokens, templates and asset files override
// the base ones, every token becomes a "--<token>" CSS variable, and asset
// keys resolve under the manifest asset prefix.
func ThemeFromManifest(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("vanilla renderer: theme manifest is nil")
	}

	tokens := copyStringMap(manifest.Tokens)
	partials := copyStringMap(manifest.Templates)
	files := copyStringMap(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	variant = strings.TrimSpace(variant)
	if variant != "" {
		override, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("vanilla renderer: theme %q has no variant %q", manifest.Name, variant)
		}
		tokens = mergeStringMaps(tokens, override.Tokens)
		partials = mergeStringMaps(partials, override.Templates)
		files = mergeStringMaps(files, override.Assets.Files)
		if override.Assets.Prefix != "" {
			prefix = override.Assets.Prefix
		}
	}

	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		if strings.HasPrefix(key, ClassTokenPrefix) {
			continue
		}
		vars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  vars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
		},
	}, nil
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMaps(base, override map[string]string) map[string]string {
	for key, value := range override {
		base[key] = value
	}
	return base
}
