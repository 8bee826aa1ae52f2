// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	DirName      string `yaml:"dir_name"`
	EnvPrefix    string `yaml:"env_prefix"`
	LegacyMapEnv string `yaml:"legacy_map_env"`
	GoModule     string `yaml:"go_module"`
	GitHubRepo   string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "open-lnk",
			DisplayName:  "Open LNK",
			Description:  "Open Windows shortcut (.lnk) files on Linux",
			DirName:      "windows-link-reader",
			EnvPrefix:    "OPEN_LNK",
			LegacyMapEnv: "WINDOWS_LINK_READER_MAP",
			GoModule:     "github.com/open-lnk/open-lnk",
			GitHubRepo:   "open-lnk/open-lnk",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "open-lnk").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the product name used in dialogs and notifications.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// DirName returns the directory name used under the XDG config and cache
// roots (e.g., "windows-link-reader").
func DirName() string { load(); return defaults.DirName }

// EnvPrefix returns the environment variable prefix (e.g., "OPEN_LNK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// LegacyMapEnv names the variable that overrides the mapping file path.
func LegacyMapEnv() string { load(); return defaults.LegacyMapEnv }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log") → "OPEN_LNK_LOG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
