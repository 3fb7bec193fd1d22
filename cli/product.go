package cli

import (
	"github.com/reuben-baek/kitchenpos/application"
	"github.com/spf13/cobra"
)

func newProductCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}
	cmd.AddCommand(newProductCreateCmd(opts))
	cmd.AddCommand(newProductChangePriceCmd(opts))
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := opts.app.products.FindAll(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd, products)
		},
	})
	return cmd
}

func newProductCreateCmd(opts *options) *cobra.Command {
	var name, price string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePrice(price, cmd.Flags().Changed("price"))
			if err != nil {
				return err
			}
			product, err := opts.app.products.Create(cmd.Context(), application.ProductRequest{Name: name, Price: p})
			if err != nil {
				return err
			}
			return writeJSON(cmd, product)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&price, "price", "", "product price")
	return cmd
}

func newProductChangePriceCmd(opts *options) *cobra.Command {
	var price string
	cmd := &cobra.Command{
		Use:   "change-price <product id>",
		Short: "Change a product price and re-evaluate the menus containing it",
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
			product, err := opts.app.products.ChangePrice(cmd.Context(), id, application.ProductRequest{Price: p})
			if err != nil {
				return err
			}
			return writeJSON(cmd, product)
		},
	}
	cmd.Flags().StringVar(&price, "price", "", "new product price")
	return cmd
}
