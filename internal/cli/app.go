package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/open-lnk/open-lnk/internal/assist"
	"github.com/open-lnk/open-lnk/internal/branding"
	"github.com/open-lnk/open-lnk/internal/config"
	"github.com/open-lnk/open-lnk/internal/linkcache"
	"github.com/open-lnk/open-lnk/internal/lnk"
	"github.com/open-lnk/open-lnk/internal/logging"
	"github.com/open-lnk/open-lnk/internal/mapping"
	"github.com/open-lnk/open-lnk/internal/platform"
	"github.com/open-lnk/open-lnk/internal/resolve"
	"github.com/open-lnk/open-lnk/internal/userdata"
)

// app bundles what a shortcut-handling command needs for one run.
type app struct {
	settings config.Settings
	log      *logging.Logger
	decoder  *lnk.Decoder
	engine   *resolve.Engine
	opener   platform.Opener
	reporter *reporter
	stdout   io.Writer
}

// newApp builds the decoder, the engine and its collaborators from the
// effective settings.
func newApp(stdout, stderr io.Writer) (*app, error) {
	s, err := currentSettings()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Options{
		Console:   stderr,
		Debug:     s.Debug,
		FilePath:  logFilePath(s),
		FileLimit: logging.DefaultFileLimit,
	})
	if err != nil {
		// The log file is optional; fall back to the console.
		log = logging.NewConsole(s.Debug)
		log.Warnf("log file disabled: %v", err)
	}

	decoder, err := newDecoder(s)
	if err != nil {
		log.Close()
		return nil, err
	}

	table, err := mapping.Load(s.MappingFile)
	if err != nil {
		log.Close()
		return nil, err
	}
	for _, skipped := range table.Skipped {
		log.Warnf("%s: skipping %v", s.MappingFile, skipped)
	}

	engine := resolve.New(s.EngineOptions())
	engine.Table = table
	engine.Cache = linkcache.New(s.CacheFile)
	engine.Log = log
	if s.Assist {
		engine.Assistant = assist.Detect(assist.CurrentEnv(), os.Stdin, stderr)
	}

	rep := &reporter{stderr: stderr, log: log}
	if s.Notify {
		rep.notifier = platform.SessionNotifier{AppName: branding.DisplayName(), Icon: "dialog-error", Timeout: -1}
	}

	return &app{
		settings: s,
		log:      log,
		decoder:  decoder,
		engine:   engine,
		opener:   platform.Desktop{Stdout: io.Discard, Stderr: io.Discard},
		reporter: rep,
		stdout:   stdout,
	}, nil
}

func (a *app) Close() error { return a.log.Close() }

func newDecoder(s config.Settings) (*lnk.Decoder, error) {
	enc, err := lnk.LookupCodepage(s.ANSICodepage)
	if err != nil {
		return nil, fmt.Errorf("config key %s: %w", config.KeyANSICodepage, err)
	}
	opts := []lnk.Option{lnk.WithCodepage(enc)}
	if !s.IDListFallback {
		opts = append(opts, lnk.WithExtractor(nil))
	}
	return lnk.NewDecoder(opts...), nil
}

// logFilePath returns the log file to append to, or "" for none. The
// default file is used when OPEN_LNK_LOG is set or when stdin is not a
// terminal, which is the case when a file manager launches us.
func logFilePath(s config.Settings) string {
	if s.LogFile != "" {
		return s.LogFile
	}
	if os.Getenv(branding.EnvVar("log")) != "" || !assist.IsTerminal(os.Stdin) {
		return userdata.LogFile()
	}
	return ""
}

// logStart records the launch context in the log file.
func (a *app) logStart(args []string) {
	ev := a.log.Debug().
		Str("event", "start").
		Bool("stdin_tty", assist.IsTerminal(os.Stdin)).
		Strs("args", args)
	if d := os.Getenv("DISPLAY"); d != "" {
		ev = ev.Str("display", d)
	}
	if w := os.Getenv("WAYLAND_DISPLAY"); w != "" {
		ev = ev.Str("wayland_display", w)
	}
	ev.Msg(branding.CLIName() + " start")
}

// shortcutPath turns a file:// or file://localhost/ URI into a local path.
// A URI with malformed escapes keeps them literally. Anything else is
// returned unchanged.
func shortcutPath(arg string) string {
	rest, ok := strings.CutPrefix(arg, "file://")
	if !ok {
		return arg
	}
	if after, ok := strings.CutPrefix(rest, "localhost/"); ok {
		rest = "/" + after
	}
	if !strings.HasPrefix(rest, "/") {
		return arg
	}
	if decoded, err := url.PathUnescape(rest); err == nil {
		return decoded
	}
	return rest
}
