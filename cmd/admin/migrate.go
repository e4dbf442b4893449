package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"curriculo-api/internal/core/database"
	"curriculo-api/internal/repo"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the pessoas, experiencias, educacao and habilidades tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := e.openDB()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := repo.AutoMigrate(db.WithContext(cmd.Context())); err != nil {
				return err
			}
			e.log.Info("automigrate done")
			fmt.Fprintln(cmd.OutOrStdout(), "migrated")
			return nil
		},
	}
}
