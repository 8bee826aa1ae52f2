package linkcache

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/open-lnk/open-lnk/internal/platform"
)

// Entry is one cached resolution.
type Entry struct {
	Key    string `json:"key" yaml:"key"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

// ErrEmpty is returned by Set for an empty key or prefix.
var ErrEmpty = errors.New("cache key and prefix must be non-empty")

// ErrRelativePrefix is returned by Set for a prefix that is not absolute.
var ErrRelativePrefix = errors.New("cache prefix must be an absolute path")

var renameFunc = os.Rename

// Cache is a file-backed LinkCache.
type Cache struct {
	Path string
}

// New returns a cache stored at path. The file is created on first Set.
func New(path string) *Cache {
	return &Cache{Path: path}
}

// valueFor returns the prefix stored on line when the line belongs to key.
// Keys are paths and may contain "=", so the whole key is matched and the
// remainder must be an absolute prefix.
func valueFor(line, key string) (string, bool) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, key+"=") {
		return "", false
	}
	v := line[len(key)+1:]
	if v != "" && !strings.HasPrefix(v, "/") {
		return "", false
	}
	return v, true
}

// splitLine splits a line for listing. Prefixes are absolute, so the split
// is taken at the last "=/"; lines without one split at the first "=".
func splitLine(line string) (key, value string, ok bool) {
	trimmed := strings.TrimRight(line, "\r\n")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	if i := strings.LastIndex(trimmed, "=/"); i > 0 {
		return trimmed[:i], trimmed[i+1:], true
	}
	return strings.Cut(trimmed, "=")
}

// Get returns the last prefix stored for key. A missing store is a miss.
func (c *Cache) Get(key string) (string, bool, error) {
	f, err := os.Open(c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("opening link cache: %w", err)
	}
	defer f.Close()

	var found string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 8192), 1<<20)
	for scanner.Scan() {
		if v, ok := valueFor(scanner.Text(), key); ok && v != "" {
			found = v
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, fmt.Errorf("reading link cache: %w", err)
	}
	return found, found != "", nil
}

// Entries returns every entry, keeping the last value per key in first-seen
// order.
func (c *Cache) Entries() ([]Entry, error) {
	data, err := os.ReadFile(c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading link cache: %w", err)
	}
	var out []Entry
	index := make(map[string]int)
	for _, line := range strings.Split(string(data), "\n") {
		k, v, ok := splitLine(line)
		if !ok || v == "" {
			continue
		}
		if i, seen := index[k]; seen {
			out[i].Prefix = v
			continue
		}
		index[k] = len(out)
		out = append(out, Entry{Key: k, Prefix: v})
	}
	return out, nil
}

// Set stores prefix for key. Unrelated lines are kept verbatim; the first
// line for key is replaced and later duplicates are dropped.
func (c *Cache) Set(key, prefix string) error {
	if key == "" || prefix == "" {
		return ErrEmpty
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("%w: %q", ErrRelativePrefix, prefix)
	}

	old, err := os.ReadFile(c.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading link cache: %w", err)
	}

	var buf bytes.Buffer
	replaced := false
	if len(old) > 0 {
		for _, line := range strings.SplitAfter(string(old), "\n") {
			if line == "" {
				continue
			}
			if _, ok := valueFor(line, key); ok {
				if !replaced {
					fmt.Fprintf(&buf, "%s=%s\n", key, prefix)
					replaced = true
				}
				continue
			}
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteByte('\n')
			}
		}
	}
	if !replaced {
		fmt.Fprintf(&buf, "%s=%s\n", key, prefix)
	}
	return c.replace(buf.Bytes())
}

// replace writes data to a temporary file beside the store and renames it
// over the store.
func (c *Cache) replace(data []byte) error {
	dir := filepath.Dir(c.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(c.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary cache file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temporary cache file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temporary cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary cache file: %w", err)
	}
	if err := platform.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting cache file permissions: %w", err)
	}
	if err := renameFunc(tmpName, c.Path); err != nil {
		return fmt.Errorf("replacing link cache: %w", err)
	}
	return nil
}
