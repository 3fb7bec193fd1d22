package cli

import (
	"context"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/application"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/spf13/cobra"
)

func newMenuCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage menus",
	}
	cmd.AddCommand(newMenuCreateCmd(opts))
	cmd.AddCommand(newMenuChangePriceCmd(opts))
	cmd.AddCommand(newMenuToggleCmd(opts, "display", "Show a menu", func(ctx context.Context, id uuid.UUID) (domain.Menu, error) {
		return opts.app.menus.Display(ctx, id)
	}))
	cmd.AddCommand(newMenuToggleCmd(opts, "hide", "Hide a menu", func(ctx context.Context, id uuid.UUID) (domain.Menu, error) {
		return opts.app.menus.Hide(ctx, id)
	}))
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			menus, err := opts.app.menus.FindAll(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd, menus)
		},
	})
	return cmd
}

func newMenuCreateCmd(opts *options) *cobra.Command {
	var (
		name, price, group string
		products           []string
		displayed          bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePrice(price, cmd.Flags().Changed("price"))
			if err != nil {
				return err
			}
			groupID, err := parseID(group)
			if err != nil {
				return err
			}
			request := application.MenuRequest{Name: name, Price: p, MenuGroupID: groupID, Displayed: displayed}
			for _, v := range products {
				mp, err := parseMenuProduct(v)
				if err != nil {
					return err
				}
				request.MenuProducts = append(request.MenuProducts, mp)
			}
			menu, err := opts.app.menus.Create(cmd.Context(), request)
			if err != nil {
				return err
			}
			return writeJSON(cmd, menu)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "menu name")
	cmd.Flags().StringVar(&price, "price", "", "menu price")
	cmd.Flags().StringVar(&group, "group", "", "menu group id")
	cmd.Flags().StringArrayVar(&products, "product", nil, "menu product as <product id>=<quantity>, repeatable")
	cmd.Flags().BoolVar(&displayed, "displayed", true, "show the menu")
	return cmd
}

func newMenuChangePriceCmd(opts *options) *cobra.Command {
	var price string
	cmd := &cobra.Command{
		Use:   "change-price <menu id>",
		Short: "Change a menu price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := parsePrice(price, cmd.Flags().Changed("price"))
			if err != nil {
				return err
			}
			menu, err := opts.app.menus.ChangePrice(cmd.Context(), id, application.MenuRequest{Price: p})
			if err != nil {
				return err
			}
			return writeJSON(cmd, menu)
		},
	}
	cmd.Flags().StringVar(&price, "price", "", "new menu price")
	return cmd
}

func newMenuToggleCmd(opts *options, use, short string, toggle func(ctx context.Context, id uuid.UUID) (domain.Menu, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <menu id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			menu, err := toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writeJSON(cmd, menu)
		},
	}
}
