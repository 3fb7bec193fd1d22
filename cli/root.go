package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/reuben-baek/kitchenpos/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	config     *config.Config
	app        *app
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "kitchenpos",
		Short:         "Manage products, menu groups and menus of the kitchen POS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log_level: %w", err)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			opts.config = cfg

			opts.app, err = newApp(cmd.Context(), cfg)
			return err
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "kitchenpos.yaml", "path to the config file")

	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newProductCmd(opts))
	cmd.AddCommand(newMenuGroupCmd(opts))
	cmd.AddCommand(newMenuCmd(opts))
	return cmd, opts
}

// execute runs cmd and closes the backend opened for it, also when the command fails.
func execute(ctx context.Context, cmd *cobra.Command, opts *options) error {
	err := cmd.ExecuteContext(ctx)
	if opts.app == nil {
		return err
	}
	if closeErr := opts.app.shutdown(context.Background()); closeErr != nil {
		if err == nil {
			return closeErr
		}
		logrus.Warnf("cli.execute: close backend [%v]", closeErr)
	}
	return err
}

func Execute() error {
	cmd, opts := newRootCmd()
	err := execute(context.Background(), cmd, opts)
	if err != nil {
		logrus.Error(err)
	}
	return err
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
