package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-notegen"
	"github.com/goliatone/go-notegen/internal/config"
	"github.com/goliatone/go-notegen/pkg/catalog"
)

type rootOptions struct {
	catalogFile  string
	templateFile string
	cfg          *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "notegen",
		Short:         "Validate clinical fields and generate discharge notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("catalog") {
				opts.catalogFile = cfg.CatalogFile
			}
			if !cmd.Flags().Changed("template") {
				opts.templateFile = cfg.TemplateFile
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogFile, "catalog", "", "field catalog file (YAML or JSON); defaults to the discharge catalog")
	rootCmd.PersistentFlags().StringVar(&opts.templateFile, "template", "", "narrative template file; defaults to the discharge template")

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(renderCmd(opts))
	rootCmd.AddCommand(fillCmd(opts))
	rootCmd.AddCommand(schemaCmd(opts))
	return rootCmd
}

// generator builds the Generator from the resolved catalog and template.
// Configuration errors abort the command.
func (o *rootOptions) generator() (*notegen.Generator, error) {
	gen, err := notegen.FromFiles(o.catalogFile, o.templateFile)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return gen, nil
}

// readValues loads a values file, or stdin when path is "-".
func readValues(path string, stdin io.Reader) (catalog.Values, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return catalog.ParseValues(data)
}
