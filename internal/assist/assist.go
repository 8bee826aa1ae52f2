package assist

import (
	"context"
	"fmt"
	"strings"
)

// Title is the window title used by every backend.
const Title = "Open LNK"

// manualID is the list identifier returned by GUI pickers for manual entry.
const manualID = "__MANUAL__"

// Action is what the human decided.
type Action int

const (
	Cancel Action = iota
	Pick
	Manual
)

func (a Action) String() string {
	switch a {
	case Pick:
		return "pick"
	case Manual:
		return "manual"
	}
	return "cancel"
}

// Choice is the answer to a Request.
type Choice struct {
	Action Action
	Prefix string
}

// Request describes what needs mapping.
type Request struct {
	// Share is the "//server/share" root for UNC targets; empty for drives.
	Share string
	// Drive is "X:" for drive targets; empty for shares.
	Drive string
	// WindowsTarget is the raw target stored in the shortcut.
	WindowsTarget string
	// WindowsSuffix is the common path suffix stored in the shortcut.
	WindowsSuffix string
	// Rest is appended to the chosen prefix.
	Rest string
	// MappingFile is where confirmed rules are saved.
	MappingFile string
	// Candidates are the known prefixes, best first.
	Candidates []string
	// LastError explains why the previous answer was rejected.
	LastError string
}

// Text renders the explanation shown above the candidate list.
func (r Request) Text() string {
	var b strings.Builder
	if r.LastError != "" {
		fmt.Fprintf(&b, "Last attempt failed:\n%s\n\n", r.LastError)
	}
	if r.Share != "" {
		b.WriteString("This assistant maps a Windows share to a Linux mount prefix.\n\n")
		fmt.Fprintf(&b, "Share: %s\n", r.Share)
		fmt.Fprintf(&b, "Windows prefix: %s\n", strings.ReplaceAll(r.Share, "/", `\`))
		fmt.Fprintf(&b, "Windows target: %s\n", orNull(r.WindowsTarget))
		fmt.Fprintf(&b, "Windows suffix: %s\n", orNull(r.WindowsSuffix))
		fmt.Fprintf(&b, "Linux suffix: %s\n\n", orEmpty(r.Rest))
		b.WriteString("Select the Linux mount prefix where this share is mounted.\n")
	} else {
		b.WriteString("This assistant maps a Windows drive letter to a Linux mount prefix.\n\n")
		fmt.Fprintf(&b, "Drive: %s\n", r.Drive)
		fmt.Fprintf(&b, "Windows target: %s\n", orNull(r.WindowsTarget))
		fmt.Fprintf(&b, "Linux suffix: %s\n\n", orEmpty(r.Rest))
		b.WriteString("Select the Linux mount prefix where this drive is mounted.\n")
	}
	fmt.Fprintf(&b, "Linux result preview: <prefix>%s\n\n", r.Rest)
	fmt.Fprintf(&b, "Global mappings file: %s\n", orNull(r.MappingFile))
	if r.Share != "" {
		b.WriteString("(Rules match on the share prefix only, then the suffix is appended.)")
	} else {
		b.WriteString("(Rules match on the drive letter only, then the suffix is appended.)")
	}
	return b.String()
}

func orNull(s string) string {
	if s == "" {
		return "(null)"
	}
	return s
}

func orEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}

// Assistant is a backend able to ask the human.
type Assistant interface {
	// Choose shows req and returns the decision. With no candidates the
	// caller goes straight to PickDirectory.
	Choose(ctx context.Context, req Request) (Choice, error)
	// PickDirectory asks for a directory. ok is false on cancellation.
	PickDirectory(ctx context.Context, title string) (dir string, ok bool, err error)
	// Name identifies the backend in logs.
	Name() string
}
