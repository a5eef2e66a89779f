package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "strength",
		Short:         "Score password strength",
		Long:          `Scores passwords against length, mixed case, digit and special character criteria.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd())
	return root
}
