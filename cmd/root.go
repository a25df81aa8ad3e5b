package cmd

import "github.com/spf13/cobra"

func Execute() error {
	rootCmd, cleanup := buildRootCmd()
	defer func() { _ = cleanup() }()

	return rootCmd.Execute()
}

// buildRootCmd returns the command tree and a cleanup that releases what
// wireApp opened. The cleanup must run whether or not the command succeeds.
func buildRootCmd() (*cobra.Command, func() error) {
	rootCmd := &cobra.Command{
		Use:           "tusc",
		Short:         "TUSC: terminal point-of-sale",
		Long:          "tusc logs a user in against the account store, lets them buy from the product catalog, and saves balances and stock when they exit.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, func() error { return nil }
	}

	shopCmd := newShopCmd(app)
	rootCmd.RunE = shopCmd.RunE

	rootCmd.AddCommand(
		newVersionCmd(),
		shopCmd,
		newAccountCmd(app),
		newProductCmd(app),
		newImportCmd(app),
	)

	return rootCmd, app.close
}
