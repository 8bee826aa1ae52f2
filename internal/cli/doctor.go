package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/open-lnk/open-lnk/internal/mounts"
	"github.com/open-lnk/open-lnk/internal/platform"
	"github.com/open-lnk/open-lnk/internal/userdata"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var doctorFix bool

var printer = message.NewPrinter(language.English)

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create missing config and cache directories")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check files and desktop integration",
	Long: `Run diagnostic checks on the mapping file, the link cache, the mount
table, session share mounts, picker and opener programs and the session bus.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := currentSettings()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		problems := userdata.Check(out, userdata.Files{Mapping: s.MappingFile, Cache: s.CacheFile}, doctorFix)
		fmt.Fprintln(out)
		problems += checkEnvironment(cmd.Context(), out, environment{
			mounts:   mounts.System{},
			gvfsDir:  s.GVFSDir,
			lookPath: exec.LookPath,
			bus:      platform.SessionBusAvailable,
		})

		fmt.Fprintln(out)
		if problems > 0 {
			printer.Fprintf(out, "%d problems found.\n", problems)
			return &ExitError{Code: ExitFailure, Reported: true}
		}
		fmt.Fprintln(out, "No problems found.")
		return nil
	},
}

// environment holds the probes used by checkEnvironment.
type environment struct {
	mounts   mounts.Source
	gvfsDir  string
	lookPath func(string) (string, error)
	bus      func() bool
}

// checkEnvironment reports on the desktop integration. Missing optional
// programs are warnings; an unreadable mount table is a problem.
func checkEnvironment(ctx context.Context, w io.Writer, env environment) int {
	fmt.Fprintln(w, "Environment check:")
	problems := 0

	ms, err := env.mounts.Mounts(ctx)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] mount table: %v\n", err)
		problems++
	} else {
		printer.Fprintf(w, "  [ OK ] mount table readable (%d mounts)\n", len(ms))
	}

	if platform.IsDir(env.gvfsDir) {
		fmt.Fprintf(w, "  [ OK ] %s exists\n", env.gvfsDir)
	} else {
		fmt.Fprintf(w, "  [MISS] %s does not exist (no session share mounts)\n", env.gvfsDir)
	}

	pickers := 0
	for _, prog := range []string{"zenity", "kdialog"} {
		if p, err := env.lookPath(prog); err == nil {
			fmt.Fprintf(w, "  [ OK ] %s (%s)\n", prog, p)
			pickers++
		} else {
			fmt.Fprintf(w, "  [MISS] %s not on PATH\n", prog)
		}
	}
	if pickers == 0 {
		fmt.Fprintln(w, "  [WARN] no graphical picker; assistance needs a terminal")
	}

	if p, err := env.lookPath("xdg-open"); err == nil {
		fmt.Fprintf(w, "  [ OK ] xdg-open (%s)\n", p)
	} else {
		fmt.Fprintln(w, "  [FAIL] xdg-open not on PATH; targets cannot be opened")
		problems++
	}

	if env.bus() {
		fmt.Fprintln(w, "  [ OK ] session bus reachable")
	} else {
		fmt.Fprintln(w, "  [MISS] session bus unreachable (errors go to stderr only)")
	}
	return problems
}
