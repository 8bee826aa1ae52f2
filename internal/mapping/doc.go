// Package mapping holds the user's rules translating Windows drive letters
// and UNC roots to POSIX prefixes.
//
// Rules live in a line-oriented file, one rule per line:
//
//	M:=/mnt/media
//	//nas/share=/mnt/nas
//	\\nas\share\sub=/mnt/sub
//
// Blank lines and lines starting with # are ignored. Prefixes under system
// mount roots are refused when loading and when appending.
package mapping
