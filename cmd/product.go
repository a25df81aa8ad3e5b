package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProductCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Inspect the catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List products with price and stock",
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := app.newService(nil, nil).ListProducts(cmd.Context())
			if err != nil {
				return err
			}

			for i, product := range products {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t$%s\t%d\n", i+1, product.Name, product.Price.StringFixed(2), product.Quantity)
			}

			return nil
		},
	})

	return cmd
}
