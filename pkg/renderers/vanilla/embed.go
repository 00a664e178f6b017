package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the file name of the bundled stylesheet inside AssetsFS.
const StylesheetName = "notegen.css"

// TemplatesFS exposes the embedded page templates rooted at the template
// directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the embedded stylesheet so callers can serve it over HTTP.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func defaultStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
