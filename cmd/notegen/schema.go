package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-notegen/internal/server"
	"github.com/goliatone/go-notegen/pkg/catalog"
	"github.com/goliatone/go-notegen/pkg/renderers/vanilla"
)

func schemaCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing the values payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := opts.generator()
			if err != nil {
				return err
			}
			doc := catalog.OpenAPIDocument(gen.Fields(), vanilla.DefaultTitle, server.APIVersion)
			return writeJSON(cmd.OutOrStdout(), doc)
		},
	}
}
