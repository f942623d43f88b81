package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kantanpro/kantanpro/internal/config"
	"github.com/kantanpro/kantanpro/internal/store/migrations"
)

func newMigrateCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := openDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			version, err := migrations.Version(ctx, db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return nil
		},
	}
}
