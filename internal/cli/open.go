package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/open-lnk/open-lnk/internal/linkcache"
	"github.com/open-lnk/open-lnk/internal/lnk"
	"github.com/open-lnk/open-lnk/internal/resolve"
	"github.com/spf13/cobra"
)

// errNoShortcut is returned when the root command gets no arguments.
var errNoShortcut = errors.New("no .lnk provided")

func runOpen(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &ExitError{Code: ExitFailure, Err: errNoShortcut}
	}

	a, err := newApp(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	defer a.Close()
	a.logStart(os.Args)

	deliver := a.open
	if flagNoOpen {
		deliver = a.print
	}
	rc := a.handleAll(cmd.Context(), args, deliver)
	a.log.Debug().Int("rc", rc).Msg("end")
	if rc != ExitOK {
		return &ExitError{Code: rc, Reported: true}
	}
	return nil
}

// deliverFunc receives a resolved shortcut.
type deliverFunc func(t resolve.Target, res resolve.Result) error

// handleAll processes every argument and returns the last non-zero exit
// code, or ExitOK.
func (a *app) handleAll(ctx context.Context, args []string, deliver deliverFunc) int {
	rc := ExitOK
	for _, arg := range args {
		if r := a.handle(ctx, arg, deliver); r != ExitOK {
			rc = r
		}
	}
	return rc
}

// handle decodes, resolves and delivers one shortcut.
func (a *app) handle(ctx context.Context, arg string, deliver deliverFunc) int {
	path := shortcutPath(arg)
	a.log.Debug().Str("arg", arg).Str("path", path).Msg("handle")

	rec, err := a.decoder.DecodeFile(path)
	if err != nil {
		var de *lnk.DecodeError
		if errors.As(err, &de) {
			a.reporter.Report(fmt.Sprintf("Failed to parse .lnk file: %s\n\n%v", path, de))
		} else {
			a.reporter.Report("Failed to open .lnk file: " + path)
		}
		return ExitFailure
	}

	t, err := resolve.NewTarget(path, linkcache.Key(path), rec)
	if err != nil {
		a.reporter.Report("No target path found in .lnk file.")
		return ExitFailure
	}
	a.log.Debug().Str("win_raw", t.Windows).Str("key", t.Key).Msg("parsed")

	res, err := a.engine.Resolve(ctx, t)
	if err != nil {
		var ue *resolve.UnresolvedError
		if errors.As(err, &ue) {
			a.reporter.Report(ue.Report())
			return ExitUnresolved
		}
		a.reporter.Report(fmt.Sprintf("%s: %v", path, err))
		return ExitFailure
	}
	a.log.Debug().
		Str("state", res.State.String()).
		Str("stage", string(res.Stage)).
		Str("lin", res.Path).
		Msg("resolved")

	if err := deliver(t, res); err != nil {
		a.reporter.Report(fmt.Sprintf("Failed to open:\n%s\n\n%v", res.Path, err))
		return ExitUnresolved
	}
	return ExitOK
}

func (a *app) open(_ resolve.Target, res resolve.Result) error {
	return a.opener.Open(res.Path)
}

func (a *app) print(_ resolve.Target, res resolve.Result) error {
	_, err := fmt.Fprintln(a.stdout, res.Path)
	return err
}
