package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errInconsistent is returned by check when the store and the base path disagree.
var errInconsistent = errors.New("store and base path are inconsistent")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compare the database with the notebook directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.checker.Check(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.Consistent() {
				fmt.Fprintln(out, "OK")
				return nil
			}
			for _, name := range report.MissingDirs {
				fmt.Fprintf(out, "missing directory: %s\n", name)
			}
			for _, name := range report.OrphanDirs {
				fmt.Fprintf(out, "untracked directory: %s\n", name)
			}
			for _, ref := range report.MissingFiles {
				fmt.Fprintf(out, "missing file: %s/%s\n", ref.Notebook, ref.Title)
			}
			for _, ref := range report.OrphanFiles {
				fmt.Fprintf(out, "untracked file: %s/%s\n", ref.Notebook, ref.Title)
			}
			return errInconsistent
		},
	}
}
