package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags and tag notes",
	}

	create := &cobra.Command{
		Use:   "create TAG",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tags.Create(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created tag %q\n", args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.tags.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	rename := &cobra.Command{
		Use:   "rename TAG NEW_NAME",
		Short: "Rename a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tags.Rename(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed tag %q to %q\n", args[0], args[1])
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete TAG",
		Short: "Delete a tag and untag every note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tags.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted tag %q\n", args[0])
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add NOTEBOOK TITLE TAG",
		Short: "Tag a note, creating the tag if needed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.noteTags.AddTagToNote(cmd.Context(), args[1], args[0], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tagged %s/%s with %q\n", args[0], args[1], args[2])
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove NOTEBOOK TITLE TAG",
		Short: "Remove a tag from a note",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.noteTags.RemoveTagFromNote(cmd.Context(), args[1], args[0], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Untagged %s/%s\n", args[0], args[1])
			return nil
		},
	}

	notes := &cobra.Command{
		Use:   "notes TAG",
		Short: "List the notes carrying a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.noteTags.NotesForTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, n := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s/%s\n", n.NotebookName, n.Title)
			}
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear TAG",
		Short: "Remove a tag from every note, keeping the tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.noteTags.RemoveAllNotesForTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Untagged %d note(s)\n", n)
			return nil
		},
	}

	cmd.AddCommand(create, list, rename, del, add, remove, notes, clear)
	return cmd
}
