package cli

import (
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/open-lnk/open-lnk/internal/branding"
	"github.com/open-lnk/open-lnk/internal/userdata"
	"github.com/spf13/cobra"
)

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "text", "Output format: text, yaml or json")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information and data locations",
	Long: `Print the release, commit and build date stamped into the binary, the Go
toolchain it was built with, and the directories holding the mapping file,
config file and link cache.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeBuildInfo(cmd.OutOrStdout(), versionFormat, currentBuildInfo())
	},
}

// buildInfo is what `version` reports.
type buildInfo struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go" yaml:"go"`
	ConfigDir string `json:"config_dir" yaml:"config_dir"`
	CacheDir  string `json:"cache_dir" yaml:"cache_dir"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Name:      branding.CLIName(),
		Version:   orDefault(buildVersion, "dev"),
		Commit:    orDefault(buildCommit, "unknown"),
		Date:      orDefault(buildDate, "unknown"),
		GoVersion: runtime.Version(),
		ConfigDir: userdata.ConfigDir(),
		CacheDir:  userdata.CacheDir(),
	}
}

// writeBuildInfo prints b as an aligned block, or as a yaml/json document.
func writeBuildInfo(w io.Writer, format string, b buildInfo) error {
	if format != "text" {
		return writeDocument(w, format, b)
	}
	fmt.Fprintf(w, "%s %s\n", b.Name, b.Version)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  commit:\t%s\n", b.Commit)
	fmt.Fprintf(tw, "  built:\t%s\n", b.Date)
	fmt.Fprintf(tw, "  go:\t%s\n", b.GoVersion)
	fmt.Fprintf(tw, "  config:\t%s\n", b.ConfigDir)
	fmt.Fprintf(tw, "  cache:\t%s\n", b.CacheDir)
	return tw.Flush()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
