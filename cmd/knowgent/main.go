// Command knowgent manages notebooks, notes and tags from the shell.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"knowgent/internal/service"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI with the given arguments and streams and returns the
// process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if closeErr := a.close(); closeErr != nil && err == nil {
		err = &setupError{err: closeErr}
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps an error to a process exit code. Bad input, missing and
// duplicate entities are user errors; store, filesystem and setup failures
// are system errors.
func exitCode(err error) int {
	var setupErr *setupError
	if errors.As(err, &setupErr) {
		return exitSysError
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind() {
		case service.KindValidation, service.KindNotFound, service.KindDuplicate:
			return exitUserError
		default:
			return exitSysError
		}
	}
	// Usage errors from cobra and errInconsistent.
	return exitUserError
}

// setupError marks failures to open the configuration, database or base path.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "knowgent",
		Short: "Knowgent manages notebooks of markdown notes",
		Long: `Knowgent keeps notebooks, notes and tags in a SQLite database and mirrors
every notebook as a directory and every note as a markdown file under the
base path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at the configured LOG_LEVEL instead of warnings only")

	root.AddCommand(newNotebookCmd(a))
	root.AddCommand(newNoteCmd(a))
	root.AddCommand(newTagCmd(a))
	root.AddCommand(newTreeCmd(a))
	root.AddCommand(newCheckCmd(a))
	return root
}
