package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Artexxx/HR-Console/internal/hooks"
	"github.com/Artexxx/HR-Console/internal/pages"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, closeAPI, err := a.employeesAPI(nil, nil)
			if err != nil {
				return err
			}
			defer closeAPI()

			view := pages.Dashboard(hooks.NewStats(api).Mount(cmd.Context()))
			if view.Error != "" {
				return errors.New(view.Error)
			}

			printDashboard(cmd.OutOrStdout(), view)

			return nil
		},
	}
}
