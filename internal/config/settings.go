package config

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/open-lnk/open-lnk/internal/mounts"
	"github.com/open-lnk/open-lnk/internal/resolve"
	"github.com/open-lnk/open-lnk/internal/shares"
	"github.com/open-lnk/open-lnk/internal/userdata"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyMappingFile     = "mapping_file"
	KeyCacheFile       = "cache_file"
	KeyAssist          = "assist"
	KeyDebug           = "debug"
	KeyNotify          = "notify"
	KeyLogFile         = "log_file"
	KeyANSICodepage    = "ansi_codepage"
	KeyIDListFallback  = "idlist_fallback"
	KeyGVFSDir         = "gvfs_dir"
	KeyMountMinScore   = "mount_min_score"
	KeyMountMinMargin  = "mount_min_margin"
	KeyCacheHeuristics = "cache_heuristics"
	KeySaveMappings    = "save_mappings"
)

type kind int

const (
	kindString kind = iota
	kindBool
	kindInt
)

type key struct {
	name string
	kind kind
	def  func() any
	help string
}

func constant(v any) func() any { return func() any { return v } }

var keys = []key{
	{KeyMappingFile, kindString, func() any { return userdata.MappingFile() }, "mapping rules file"},
	{KeyCacheFile, kindString, func() any { return userdata.CacheFile() }, "link cache file"},
	{KeyAssist, kindBool, constant(true), "ask the user when automatic resolution fails"},
	{KeyDebug, kindBool, constant(false), "debug logging"},
	{KeyNotify, kindBool, constant(true), "desktop notifications for errors"},
	{KeyLogFile, kindString, constant(""), "explicit log file"},
	{KeyANSICodepage, kindString, constant("windows-1252"), "codepage for non-Unicode fields"},
	{KeyIDListFallback, kindBool, constant(true), "mine the ID list when no path field is present"},
	{KeyGVFSDir, kindString, func() any { return shares.DefaultGVFSDir() }, "session share directory"},
	{KeyMountMinScore, kindInt, constant(mounts.DefaultMinScore), "minimum mount score for drive guesses"},
	{KeyMountMinMargin, kindInt, constant(mounts.DefaultMinMargin), "minimum margin over the runner-up mount"},
	{KeyCacheHeuristics, kindBool, constant(true), "cache share and mount guesses"},
	{KeySaveMappings, kindBool, constant(true), "save assisted prefixes as mapping rules"},
}

func lookupKey(name string) (key, bool) {
	for _, k := range keys {
		if k.name == name {
			return k, true
		}
	}
	return key{}, false
}

func (k key) parse(value string) (any, error) {
	switch k.kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("expected true or false, got %q", value)
		}
		return b, nil
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", value)
		}
		return n, nil
	}
	return value, nil
}

func setDefaults() {
	for _, k := range keys {
		viper.SetDefault(k.name, k.def())
	}
}

// KeyInfo describes a config key for listing.
type KeyInfo struct {
	Name  string
	Value string
	Help  string
}

// Keys lists every known key with its effective value, sorted by name.
func Keys() []KeyInfo {
	out := make([]KeyInfo, 0, len(keys))
	for _, k := range keys {
		out = append(out, KeyInfo{Name: k.name, Value: viper.GetString(k.name), Help: k.help})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Settings is the typed view of the effective configuration.
type Settings struct {
	MappingFile     string `mapstructure:"mapping_file"`
	CacheFile       string `mapstructure:"cache_file"`
	Assist          bool   `mapstructure:"assist"`
	Debug           bool   `mapstructure:"debug"`
	Notify          bool   `mapstructure:"notify"`
	LogFile         string `mapstructure:"log_file"`
	ANSICodepage    string `mapstructure:"ansi_codepage"`
	IDListFallback  bool   `mapstructure:"idlist_fallback"`
	GVFSDir         string `mapstructure:"gvfs_dir"`
	MountMinScore   int    `mapstructure:"mount_min_score"`
	MountMinMargin  int    `mapstructure:"mount_min_margin"`
	CacheHeuristics bool   `mapstructure:"cache_heuristics"`
	SaveMappings    bool   `mapstructure:"save_mappings"`
}

// Current returns the effective settings. Load must have been called.
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}

// EngineOptions converts the settings into resolver options.
func (s Settings) EngineOptions() resolve.Options {
	opts := resolve.DefaultOptions()
	opts.MappingFile = s.MappingFile
	opts.GVFSDir = s.GVFSDir
	opts.MinScore = s.MountMinScore
	opts.MinMargin = s.MountMinMargin
	opts.CacheHeuristics = s.CacheHeuristics
	opts.SaveMappings = s.SaveMappings
	return opts
}
