package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/personsvc/internal/config"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Create the persons table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			st, err := openStore(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, st.Close()) }()

			if err := st.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			log.Info("schema is up to date", slog.String("driver", cfg.Database.Driver))
			return nil
		},
	}
}
