package userdata

import (
	"os"
	"path/filepath"

	"github.com/open-lnk/open-lnk/internal/branding"
)

// File name constants for the userdata convention.
const (
	MappingFileName = "mappings.conf"
	CacheFileName   = "links.conf"
	LogFileName     = "open_lnk.log"
	ConfigFileName  = "config.yaml"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// ConfigHome returns $XDG_CONFIG_HOME, falling back to ~/.config.
func ConfigHome() string {
	return xdgHome("XDG_CONFIG_HOME", ".config")
}

// CacheHome returns $XDG_CACHE_HOME, falling back to ~/.cache.
func CacheHome() string {
	return xdgHome("XDG_CACHE_HOME", ".cache")
}

func xdgHome(env, fallback string) string {
	if v := os.Getenv(env); v != "" && filepath.IsAbs(v) {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", fallback)
	}
	return filepath.Join(home, fallback)
}

// ConfigDir returns the application config directory,
// e.g. ~/.config/windows-link-reader.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), branding.DirName())
}

// CacheDir returns the application cache directory,
// e.g. ~/.cache/windows-link-reader.
func CacheDir() string {
	return filepath.Join(CacheHome(), branding.DirName())
}

// MappingFile returns the mapping file path. The legacy
// WINDOWS_LINK_READER_MAP variable overrides the default location.
func MappingFile() string {
	if v := os.Getenv(branding.LegacyMapEnv()); v != "" {
		return v
	}
	return filepath.Join(ConfigDir(), MappingFileName)
}

// CacheFile returns the link cache path.
func CacheFile() string {
	return filepath.Join(CacheDir(), CacheFileName)
}

// LogFile returns the default log file path.
func LogFile() string {
	return filepath.Join(CacheDir(), LogFileName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
