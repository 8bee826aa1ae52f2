// Package linkcache remembers, per shortcut file, the POSIX prefix that last
// resolved it.
//
// The store is a text file of "<absolute-shortcut-path>=<prefix>" lines.
// Reads keep the last value for a key. Writes rewrite the whole file to a
// temporary sibling and rename it into place, so readers in other processes
// never see a partial file and a key never appears twice after a write.
package linkcache
