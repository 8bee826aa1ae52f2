package lnk

import "github.com/open-lnk/open-lnk/internal/winpath"

// BuildTarget combines the record's fields into one Windows-style target
// path, most reliable source first. It returns false when the record holds
// nothing usable.
//
// The UNC share root wins over the local base when the local base is empty
// or only names a drive. The ID list heuristic only replaces a result that
// is neither drive nor UNC shaped.
func BuildTarget(rec *Record) (string, bool) {
	if rec == nil {
		return "", false
	}
	base := rec.LocalBase()
	suffix := rec.Suffix()

	if net := winpath.NormalizeUNCRoot(rec.Net()); winpath.IsUNCShaped(net) {
		if base == "" || winpath.IsDriveShaped(base) || winpath.IsDriveRoot(base) {
			base = net
		}
	}
	if base == "" {
		base = rec.Device()
	}

	relative := value(rec.RelativePath)
	workDir := value(rec.WorkingDir)

	var candidate string
	switch {
	case base != "" && suffix != "":
		candidate = winpath.JoinWindows(base, suffix)
	case base != "":
		candidate = base
	case workDir != "" && relative != "":
		candidate = workDir + `\` + relative
	case relative != "":
		candidate = relative
	case suffix != "":
		candidate = suffix
	}

	if !isLocatable(candidate) {
		if idl := value(rec.IDListPath); isLocatable(idl) {
			return idl, true
		}
	}
	return candidate, candidate != ""
}

func isLocatable(s string) bool {
	return winpath.IsDriveShaped(s) || winpath.IsUNCShaped(s)
}
