package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const defaultActivityLimit = 50

type activityOptions struct {
	Limit int
	DLQ   bool
	Reset bool
}

func newActivityCmd(a *app) *cobra.Command {
	var opts activityOptions

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Print the employee change journal collected from kafka",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, closeRepo, err := a.activityRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			out := cmd.OutOrStdout()

			if opts.Reset {
				if err := repo.ResetAll(ctx); err != nil {
					return err
				}

				fmt.Fprintln(out, "Activity journal cleared")

				return nil
			}

			if opts.DLQ {
				entries, err := repo.ListDLQ(ctx, opts.Limit)
				if err != nil {
					return err
				}

				printDLQ(out, entries)

				return nil
			}

			events, err := repo.ListEvents(ctx, opts.Limit)
			if err != nil {
				return err
			}

			printActivity(out, events)

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", defaultActivityLimit, "max entries to print")
	cmd.Flags().BoolVar(&opts.DLQ, "dlq", false, "print the dead-letter queue instead")
	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "delete all journal and dead-letter entries")
	cmd.MarkFlagsMutuallyExclusive("dlq", "reset")

	return cmd
}
