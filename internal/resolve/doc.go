// Package resolve turns the Windows target of a shortcut into a local POSIX
// path, or an smb:// URI for shares that are not mounted.
//
// Resolution is a fixed sequence of stages per path class. Each stage either
// produces an existing candidate, which ends resolution, or passes to the
// next one:
//
//	POSIX: raw:posix
//	UNC:   cache:unc, unc:table, unc:gvfs, unc:cifs, unc:assist, unc:smb
//	drive: cache:drive, drive:table, drive:mounts, drive:assist
//
// Running out of stages is a failure, reported with every field decoded
// from the shortcut.
package resolve
