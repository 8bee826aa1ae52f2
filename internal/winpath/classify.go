package winpath

import "fmt"

// Kind is the class of a slash-normalized target path.
type Kind int

const (
	Unrecognized Kind = iota
	PosixAbsolute
	DriveLetter
	UNC
)

func (k Kind) String() string {
	switch k {
	case PosixAbsolute:
		return "posix"
	case DriveLetter:
		return "drive"
	case UNC:
		return "unc"
	}
	return "unrecognized"
}

// MarshalText lets Kind render by name in YAML and JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Path is a classified target. Which fields are set depends on Kind:
// Drive and Rest for DriveLetter; Server, Share and Rest for UNC. Rest
// always starts with "/" or is empty.
type Path struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Raw    string `json:"raw" yaml:"raw"`
	Drive  byte   `json:"-" yaml:"-"`
	Server string `json:"server,omitempty" yaml:"server,omitempty"`
	Share  string `json:"share,omitempty" yaml:"share,omitempty"`
	Rest   string `json:"rest,omitempty" yaml:"rest,omitempty"`
}

// Classify inspects a slash-normalized string. A UNC path whose share
// cannot be parsed keeps Kind UNC with an empty Share; HasShare reports it.
func Classify(s string) Path {
	p := Path{Raw: s}
	switch {
	case len(s) >= 2 && s[0] == '/' && s[1] == '/':
		p.Kind = UNC
		if server, share, rest, ok := ParseUNCShare(NormalizeUNC(s)); ok {
			p.Server, p.Share, p.Rest = server, share, rest
		}
	case len(s) >= 1 && s[0] == '/':
		p.Kind = PosixAbsolute
	case len(s) >= 3 && isAlpha(s[0]) && s[1] == ':' && s[2] == '/':
		p.Kind = DriveLetter
		p.Drive = upper(s[0])
		p.Rest = s[2:]
	}
	return p
}

// ClassifyWindows slash-normalizes a Windows-style string and classifies it.
func ClassifyWindows(s string) Path {
	return Classify(ToSlash(s))
}

// HasShare reports whether a UNC path carries both server and share.
func (p Path) HasShare() bool {
	return p.Kind == UNC && p.Server != "" && p.Share != ""
}

// Root returns the canonical "//server/share" root of a UNC path, or the
// "X:" designator of a drive path.
func (p Path) Root() string {
	switch p.Kind {
	case UNC:
		if p.HasShare() {
			return "//" + p.Server + "/" + p.Share
		}
	case DriveLetter:
		return string(p.Drive) + ":"
	}
	return ""
}

func (p Path) String() string {
	return fmt.Sprintf("%s(%s)", p.Kind, p.Raw)
}
