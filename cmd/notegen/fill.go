package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/renderers/tui"
)

// errStdinPrefill rejects "--values -": the prompts read answers from stdin.
var errStdinPrefill = errors.New("fill: --values - is not supported, prompts read from stdin; pass a file")

func fillCmd(opts *rootOptions) *cobra.Command {
	var (
		valuesFile string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill the form interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if valuesFile == "-" {
				return errStdinPrefill
			}
			gen, err := opts.generator()
			if err != nil {
				return err
			}

			prefill := catalog.Values{}
			if valuesFile != "" {
				prefill, err = readValues(valuesFile, cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			renderer, err := tui.New(tui.WithOutputFormat(tui.OutputFormat(format)))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			out, err := renderer.Render(ctx, gen, prefill)
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			if len(out) == 0 || out[len(out)-1] != '\n' {
				out = append(out, '\n')
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&valuesFile, "values", "", "values file used as prompt defaults (stdin is not supported)")
	cmd.Flags().StringVar(&format, "format", string(tui.OutputFormatPrettyText), "output format: pretty, json or form")
	return cmd
}
