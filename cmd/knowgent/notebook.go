package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"knowgent/internal/service"
)

func newNotebookCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notebook",
		Aliases: []string{"nb"},
		Short:   "Manage notebooks",
	}

	var description string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a notebook and its directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, err := a.notebooks.Create(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created notebook %q at %s\n", nb.Name, nb.Path)
			return nil
		},
	}
	create.Flags().StringVarP(&description, "description", "d", "", "notebook description")

	list := &cobra.Command{
		Use:   "list",
		Short: "List notebooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notebooks, err := a.notebooks.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION\tUPDATED")
			for _, nb := range notebooks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", nb.Name, nb.Description, nb.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	rename := &cobra.Command{
		Use:   "rename NAME NEW_NAME",
		Short: "Rename a notebook and its directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nb, err := a.notebooks.Update(cmd.Context(), args[0], service.NotebookUpdate{NewName: &args[1]})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed notebook %q to %q\n", args[0], nb.Name)
			return nil
		},
	}

	describe := &cobra.Command{
		Use:   "describe NAME DESCRIPTION",
		Short: "Set a notebook's description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.notebooks.Update(cmd.Context(), args[0], service.NotebookUpdate{NewDescription: &args[1]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated notebook %q\n", args[0])
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a notebook, its notes and its directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.notebooks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted notebook %q\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(create, list, rename, describe, del)
	return cmd
}

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show every notebook with its notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.notebooks.Tree(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range tree {
				fmt.Fprintf(out, "%s/\n", t.Notebook.Name)
				for _, n := range t.Notes {
					fmt.Fprintf(out, "  %s\n", n.Title)
				}
			}
			return nil
		},
	}
}
