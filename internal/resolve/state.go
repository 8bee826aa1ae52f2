package resolve

import "github.com/open-lnk/open-lnk/internal/winpath"

// State is where resolution ended.
type State int

const (
	Raw State = iota
	Local
	Cached
	TableMatched
	ShareLocated
	MountMatched
	UriFallback
	Assisted
	Failed
)

var stateNames = [...]string{
	Raw:          "raw",
	Local:        "local",
	Cached:       "cached",
	TableMatched: "table-matched",
	ShareLocated: "share-located",
	MountMatched: "mount-matched",
	UriFallback:  "uri-fallback",
	Assisted:     "assisted",
	Failed:       "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Stage is one resolution strategy. Its value is the name used in logs.
type Stage string

const (
	StageRawPosix    Stage = "raw:posix"
	StageCacheDrive  Stage = "cache:drive"
	StageCacheUNC    Stage = "cache:unc"
	StageUNCTable    Stage = "unc:table"
	StageUNCGVFS     Stage = "unc:gvfs"
	StageUNCCIFS     Stage = "unc:cifs"
	StageUNCAssist   Stage = "unc:assist"
	StageUNCSMB      Stage = "unc:smb"
	StageDriveTable  Stage = "drive:table"
	StageDriveMounts Stage = "drive:mounts"
	StageDriveAssist Stage = "drive:assist"
	StageFail        Stage = "fail"
)

// State returns the state reached when the stage succeeds.
func (s Stage) State() State {
	switch s {
	case StageRawPosix:
		return Local
	case StageCacheDrive, StageCacheUNC:
		return Cached
	case StageUNCTable, StageDriveTable:
		return TableMatched
	case StageUNCGVFS, StageUNCCIFS:
		return ShareLocated
	case StageDriveMounts:
		return MountMatched
	case StageUNCAssist, StageDriveAssist:
		return Assisted
	case StageUNCSMB:
		return UriFallback
	}
	return Failed
}

var pipelines = map[winpath.Kind][]Stage{
	winpath.PosixAbsolute: {StageRawPosix},
	winpath.UNC:           {StageCacheUNC, StageUNCTable, StageUNCGVFS, StageUNCCIFS, StageUNCAssist, StageUNCSMB},
	winpath.DriveLetter:   {StageCacheDrive, StageDriveTable, StageDriveMounts, StageDriveAssist},
}

// Pipeline returns the stages tried for a path class, in order.
func Pipeline(kind winpath.Kind) []Stage {
	return append([]Stage(nil), pipelines[kind]...)
}

// First returns the first stage for kind, or StageFail.
func First(kind winpath.Kind) Stage {
	if p := pipelines[kind]; len(p) > 0 {
		return p[0]
	}
	return StageFail
}

// Next returns the stage after cur for kind. The last stage, and any stage
// not in the pipeline, is followed by StageFail.
func Next(kind winpath.Kind, cur Stage) Stage {
	p := pipelines[kind]
	for i, s := range p {
		if s == cur && i+1 < len(p) {
			return p[i+1]
		}
	}
	return StageFail
}
