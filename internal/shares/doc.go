// Package shares finds local mounts of SMB shares named by a UNC path.
//
// Two sources are consulted independently: desktop session mounts exposed
// by GVFS under /run/user/<uid>/gvfs, and kernel CIFS mounts listed in the
// OS mount table.
package shares
