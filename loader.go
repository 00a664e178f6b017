package notegen

import (
	"fmt"
	"os"

	"github.com/goliatone/go-notegen/pkg/catalog"
)

// FromFiles builds a Generator from an optional catalog file and an optional
// template file. Empty paths keep the built-in discharge catalog or template.
// Options are applied after the file-based configuration.
func FromFiles(catalogPath, templatePath string, options ...Option) (*Generator, error) {
	var opts []Option

	if catalogPath != "" {
		fields, err := catalog.LoadFile(catalogPath)
		if err != nil {
			return nil, fmt.Errorf("notegen: %w", err)
		}
		opts = append(opts, WithFields(fields))
	}

	if templatePath != "" {
		source, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("notegen: read template %s: %w", templatePath, err)
		}
		if len(source) == 0 {
			return nil, fmt.Errorf("notegen: template %s is empty", templatePath)
		}
		opts = append(opts, WithTemplateSource(string(source)))
	}

	return New(append(opts, options...)...)
}
