package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.migrate(cmd.Context()); err != nil {
				return err
			}
			logrus.Infof("migrate: %s schema is up to date", opts.config.Database.Driver)
			return nil
		},
	}
}
