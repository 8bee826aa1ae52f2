package mounts

import (
	"sort"
	"strings"

	"github.com/open-lnk/open-lnk/internal/winpath"
)

// Confidence gate defaults. A best candidate is accepted only when its
// score is at least MinScore and beats the runner-up by at least MinMargin.
const (
	DefaultMinScore  = 0
	DefaultMinMargin = 2
)

// Mountpoint prefix bonuses, tested in order.
var PrefixBonuses = []struct {
	Prefix string
	Bonus  int
}{
	{"/mnt/", 25},
	{"/media/", 22},
	{"/run/media/", 18},
}

// Filesystem type bonuses.
const (
	NetworkFSBonus   = 6
	RemovableFSBonus = 4
)

var networkFS = map[string]bool{
	"cifs": true, "smb3": true, "smbfs": true,
	"nfs": true, "nfs4": true, "fuse.sshfs": true,
}

var removableFS = map[string]bool{
	"vfat": true, "exfat": true, "ntfs": true, "ntfs3": true,
	"fuseblk": true, "msdos": true, "udf": true, "iso9660": true,
}

// SystemMounts are never considered for drive paths.
var SystemMounts = []string{"/proc", "/sys", "/dev", "/run/user", "/snap", "/var/lib/snapd"}

// IsSystemMount reports whether mountpoint is "/" or lies under one of
// SystemMounts.
func IsSystemMount(mountpoint string) bool {
	if mountpoint == "" || mountpoint == "/" {
		return true
	}
	for _, root := range SystemMounts {
		if winpath.HasPathPrefix(mountpoint, root, false) {
			return true
		}
	}
	return false
}

// IsNetworkFS reports whether fstype is an SMB, NFS or SSH filesystem.
func IsNetworkFS(fstype string) bool { return networkFS[fstype] }

// PrefixBonus scores where a mount point lives.
func PrefixBonus(mountpoint string) int {
	for _, pb := range PrefixBonuses {
		if strings.HasPrefix(mountpoint, pb.Prefix) {
			return pb.Bonus
		}
	}
	return 0
}

// FSBonus scores a filesystem type.
func FSBonus(fstype string) int {
	switch {
	case networkFS[fstype]:
		return NetworkFSBonus
	case removableFS[fstype]:
		return RemovableFSBonus
	}
	return 0
}

// Score rates a mount as the root of a Windows drive.
func Score(m Mount) int {
	return FSBonus(m.Fstype) + PrefixBonus(m.Mountpoint) + len(m.Mountpoint)/8
}

// Candidate is a mount whose joined path exists.
type Candidate struct {
	Mount Mount
	Path  string
	Score int
}

// Scorer picks a mount for a drive path with a confidence gate.
type Scorer struct {
	MinScore  int
	MinMargin int
}

// NewScorer returns a Scorer with the default thresholds.
func NewScorer() Scorer {
	return Scorer{MinScore: DefaultMinScore, MinMargin: DefaultMinMargin}
}

// Candidates joins rest onto every non-system mount point and returns the
// existing results, best first. Equal scores keep mount table order.
func (s Scorer) Candidates(mounts []Mount, rest string, exists func(string) bool) []Candidate {
	var out []Candidate
	seen := make(map[string]bool)
	for _, m := range mounts {
		if IsSystemMount(m.Mountpoint) || seen[m.Mountpoint] {
			continue
		}
		seen[m.Mountpoint] = true
		path := winpath.JoinPrefix(m.Mountpoint, rest)
		if !exists(path) {
			continue
		}
		out = append(out, Candidate{Mount: m, Path: path, Score: Score(m)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Best returns the top candidate when it clears MinScore and leads the
// runner-up by MinMargin. Ambiguity yields no match.
func (s Scorer) Best(mounts []Mount, rest string, exists func(string) bool) (Candidate, bool) {
	cands := s.Candidates(mounts, rest, exists)
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	if best.Score < s.MinScore {
		return Candidate{}, false
	}
	if len(cands) > 1 && best.Score-cands[1].Score < s.MinMargin {
		return Candidate{}, false
	}
	return best, true
}
