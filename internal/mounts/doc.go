// Package mounts reads the live OS mount table and scores mount points as
// homes for a Windows drive path.
package mounts
