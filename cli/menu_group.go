package cli

import (
	"github.com/reuben-baek/kitchenpos/application"
	"github.com/spf13/cobra"
)

func newMenuGroupCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu-group",
		Short: "Manage menu groups",
	}

	var name string
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a menu group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := opts.app.menuGroups.Create(cmd.Context(), application.MenuGroupRequest{Name: name})
			if err != nil {
				return err
			}
			return writeJSON(cmd, group)
		},
	}
	create.Flags().StringVar(&name, "name", "", "menu group name")

	cmd.AddCommand(create)
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List menu groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := opts.app.menuGroups.FindAll(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd, groups)
		},
	})
	return cmd
}
