package cmd

import (
	"context"

	"github.com/bnema/tusc/internal/adapters/render/console"
	"github.com/bnema/tusc/internal/application"
	"github.com/spf13/cobra"
)

func newShopCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Log in and buy from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sink := console.NewSink(cmd.OutOrStdout())
			sink.Banner()

			saveSpinner := func(ctx context.Context, plan application.CommitPlan, commit func(context.Context) error) error {
				return runSaveSpinner(ctx, cmd.ErrOrStderr(), plan, commit)
			}

			service := app.newService(
				console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
				sink,
				application.WithCommitRunner(saveSpinner),
			)

			if _, err := service.Shop(cmd.Context()); err != nil {
				return err
			}

			return sink.Err()
		},
	}
}
