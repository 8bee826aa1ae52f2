package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/open-lnk/open-lnk/internal/branding"
	"github.com/open-lnk/open-lnk/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configPath string
	flagDebug  bool
	flagAssist bool
	flagNoOpen bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [flags] <file.lnk|file://URI>...",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` decodes Windows shortcut (.lnk) files, finds where their target lives
on this machine and opens it with the desktop's default handler.

Drive letters and network shares are located through the mapping file,
the link cache, session share mounts, CIFS mounts and the mount table.
When all of that fails, a picker asks which mounted directory to use and
remembers the answer.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              runOpen,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/"+branding.DirName()+"/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Trace every resolution stage on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagAssist, "assist", false, "Force interactive assistance and trace resolution stages")
	rootCmd.Flags().BoolVar(&flagNoOpen, "no-open", false, "Resolve and print targets without opening them")
}

// loadConfig runs before every command. Commands that must work with a
// broken config file skip it.
func loadConfig(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "validate", "init":
		return nil
	}
	if err := config.Load(configPath); err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return nil
}

// currentSettings returns the effective settings with command-line flags
// applied on top.
func currentSettings() (config.Settings, error) {
	s, err := config.Current()
	if err != nil {
		return config.Settings{}, err
	}
	if flagDebug {
		s.Debug = true
	}
	if flagAssist {
		s.Assist = true
		s.Debug = true
	}
	return s, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// An interrupt cancels a pending assistant prompt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	var ee *ExitError
	if err != nil && !errors.As(err, &ee) {
		// Flag and argument errors from cobra are usage errors.
		return &ExitError{Code: ExitFailure, Err: err}
	}
	return err
}
