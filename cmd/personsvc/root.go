package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "personsvc",
		Short:         "Persons HTTP service",
		Long:          "Serves a greeting page, a static message and person records backed by Postgres or SQLite.",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Without a subcommand the service is served.
		RunE: serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newSchemaCmd())
	return root
}
