package resolve

import "github.com/open-lnk/open-lnk/internal/mounts"

// DefaultMaxAssistAttempts bounds how often the assistant is asked again
// after a rejected answer.
const DefaultMaxAssistAttempts = 8

// Options is the per-run configuration of an Engine.
type Options struct {
	// MappingFile receives rules confirmed through the assistant.
	MappingFile string
	// GVFSDir is the session share directory.
	GVFSDir string
	// MinScore and MinMargin gate the mount table guess for drives.
	MinScore  int
	MinMargin int
	// CacheHeuristics records share and mount guesses in the link cache.
	CacheHeuristics bool
	// SaveMappings appends assisted prefixes to MappingFile.
	SaveMappings bool
	// MaxAssistAttempts bounds the assistant loop.
	MaxAssistAttempts int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MinScore:          mounts.DefaultMinScore,
		MinMargin:         mounts.DefaultMinMargin,
		CacheHeuristics:   true,
		SaveMappings:      true,
		MaxAssistAttempts: DefaultMaxAssistAttempts,
	}
}
