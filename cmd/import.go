package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/tusc/internal/adapters/importer"
	"github.com/bnema/tusc/internal/application"
	"github.com/spf13/cobra"
)

func newImportCmd(app *app) *cobra.Command {
	var usersPath string
	var productsPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import Users.json and Products.json into the stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if usersPath == "" && productsPath == "" {
				return errors.New("at least one of --users or --products is required")
			}

			var command application.ImportCommand
			if usersPath != "" {
				accounts, err := importer.ReadUsersFile(usersPath)
				if err != nil {
					return err
				}
				command.Accounts = accounts
			}
			if productsPath != "" {
				products, err := importer.ReadProductsFile(productsPath)
				if err != nil {
					return err
				}
				command.Products = products
			}

			if err := app.newService(nil, nil).Import(cmd.Context(), command); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d accounts and %d products\n", len(command.Accounts), len(command.Products))
			return err
		},
	}

	cmd.Flags().StringVar(&usersPath, "users", "", "path to a Users.json file")
	cmd.Flags().StringVar(&productsPath, "products", "", "path to a Products.json file")

	return cmd
}
