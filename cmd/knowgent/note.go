package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"knowgent/internal/service"
)

func newNoteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes and their content",
	}

	create := &cobra.Command{
		Use:   "create NOTEBOOK TITLE",
		Short: "Create a note, empty or with --content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				note service.Note
				err  error
			)
			if cmd.Flags().Changed("content") {
				content, _ := cmd.Flags().GetString("content")
				note, err = a.notes.SaveAs(cmd.Context(), args[1], args[0], content)
			} else {
				note, err = a.notes.Create(cmd.Context(), args[1], args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created note %q at %s\n", note.Title, note.Path)
			return nil
		},
	}
	create.Flags().StringP("content", "c", "", "initial content")

	list := &cobra.Command{
		Use:   "list NOTEBOOK",
		Short: "List the notes of a notebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.notes.ListInNotebook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tUPDATED")
			for _, n := range notes {
				fmt.Fprintf(w, "%s\t%s\n", n.Title, n.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	show := &cobra.Command{
		Use:   "show NOTEBOOK TITLE",
		Short: "Print a note's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := a.notes.Content(cmd.Context(), args[1], args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	write := &cobra.Command{
		Use:   "write NOTEBOOK TITLE",
		Short: "Replace a note's content with --content or stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, "content")
			if err != nil {
				return err
			}
			if err := a.notes.SaveContent(cmd.Context(), args[1], args[0], content); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %q\n", len(content), args[1])
			return nil
		},
	}
	write.Flags().StringP("content", "c", "", "new content (default: read stdin)")

	var newTitle, toNotebook string
	move := &cobra.Command{
		Use:   "move NOTEBOOK TITLE",
		Short: "Rename a note with --title and/or move it with --to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd service.NoteUpdate
			if cmd.Flags().Changed("title") {
				upd.NewTitle = &newTitle
			}
			if cmd.Flags().Changed("to") {
				upd.NewNotebookName = &toNotebook
			}
			note, err := a.notes.Update(cmd.Context(), args[1], args[0], upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved note to %s/%s\n", note.NotebookName, note.Title)
			return nil
		},
	}
	move.Flags().StringVar(&newTitle, "title", "", "new title")
	move.Flags().StringVar(&toNotebook, "to", "", "destination notebook")

	del := &cobra.Command{
		Use:   "delete NOTEBOOK TITLE",
		Short: "Delete a note and its file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.notes.Delete(cmd.Context(), args[1], args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %q\n", args[1])
			return nil
		},
	}

	find := &cobra.Command{
		Use:   "find NOTEBOOK TITLE TERM",
		Short: "Print the byte offsets of every occurrence of TERM",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			spans, err := a.notes.Find(cmd.Context(), args[1], args[0], args[2])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range spans {
				fmt.Fprintf(out, "%d-%d\n", s.Start, s.End)
			}
			fmt.Fprintf(out, "%d match(es)\n", len(spans))
			return nil
		},
	}

	replace := &cobra.Command{
		Use:   "replace NOTEBOOK TITLE OLD NEW",
		Short: "Replace every occurrence of OLD with NEW",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.notes.Replace(cmd.Context(), args[1], args[0], args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Replaced %d occurrence(s)\n", n)
			return nil
		},
	}

	tags := &cobra.Command{
		Use:   "tags NOTEBOOK TITLE",
		Short: "List a note's tags",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.noteTags.TagsForNote(cmd.Context(), args[1], args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	untagAll := &cobra.Command{
		Use:   "untag-all NOTEBOOK TITLE",
		Short: "Remove every tag from a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.noteTags.RemoveAllTagsForNote(cmd.Context(), args[1], args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d tag(s)\n", n)
			return nil
		},
	}

	cmd.AddCommand(create, list, show, write, move, del, find, replace, tags, untagAll)
	return cmd
}
