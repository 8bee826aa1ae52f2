package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/open-lnk/open-lnk/internal/branding"
	"github.com/open-lnk/open-lnk/internal/userdata"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Dir returns the config directory (~/.config/windows-link-reader/).
func Dir() string {
	return userdata.ConfigDir()
}

// FilePath returns the path of the config file in use. It is the explicit
// path given to Load, or the default location.
func FilePath() string {
	if f := viper.ConfigFileUsed(); f != "" {
		return f
	}
	return userdata.ConfigFile()
}

// EnsureDir creates the directory holding the config file.
func EnsureDir() error {
	dir := filepath.Dir(FilePath())
	if err := os.MkdirAll(dir, userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper with defaults, the config file and the environment.
// An empty path selects the default location. A missing file is not an
// error; a file that does not match the schema yields a *ValidationError.
func Load(path string) error {
	if path == "" {
		path = userdata.ConfigFile()
	}
	setDefaults()
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := Validate(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. The value
// is converted to the key's type first.
func Set(key, value string) error {
	k, ok := lookupKey(key)
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	typed, err := k.parse(value)
	if err != nil {
		return fmt.Errorf("config key %s: %w", key, err)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// Only keys present in the file are written back, so that defaults
	// computed for this machine are not frozen into it.
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}
	file.Set(key, typed)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	viper.Set(key, typed)
	return nil
}
