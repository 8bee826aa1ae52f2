package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/open-lnk/open-lnk/internal/resolve"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <file.lnk|file://URI>...",
	Short: "Resolve shortcuts without opening them",
	Long: `Run the resolution pipeline for each shortcut and print the state it
ended in, the stage that produced the result and the local path or smb:// URI.
The exit code follows the same rules as opening.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	defer a.Close()
	a.logStart(os.Args)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHORTCUT\tSTATE\tSTAGE\tPATH")
	rc := a.handleAll(cmd.Context(), args, func(t resolve.Target, res resolve.Result) error {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Shortcut, res.State, res.Stage, res.Path)
		return err
	})
	if err := w.Flush(); err != nil {
		return err
	}
	if rc != ExitOK {
		return &ExitError{Code: rc, Reported: true}
	}
	return nil
}
