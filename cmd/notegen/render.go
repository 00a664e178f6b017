package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-notegen"
)

var errInvalidValues = errors.New("values are invalid")

func renderCmd(opts *rootOptions) *cobra.Command {
	var (
		valuesFile string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Validate a values file and print the note",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := opts.generator()
			if err != nil {
				return err
			}
			values, err := readValues(valuesFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			outcome := gen.Generate(values)
			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), outcome); err != nil {
					return err
				}
			} else if outcome.Rendered {
				fmt.Fprint(cmd.OutOrStdout(), outcome.Narrative)
			} else {
				writeErrors(cmd.ErrOrStderr(), gen, outcome)
			}

			if !outcome.Rendered {
				return errInvalidValues
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&valuesFile, "values", "", `values file (YAML or JSON), "-" for stdin`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full outcome as JSON")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func writeErrors(w io.Writer, gen *notegen.Generator, outcome notegen.Outcome) {
	for _, field := range gen.Fields() {
		fr, ok := outcome.Result.Field(field.ID)
		if ok && !fr.Valid {
			fmt.Fprintf(w, "%s: %s\n", field.Label, fr.Error)
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
