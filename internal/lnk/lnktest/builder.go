// Package lnktest builds synthetic shell link files for tests.
package lnktest

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// Link flag bits, mirrored here so the package has no dependency on the
// decoder it feeds.
const (
	FlagIDList       uint32 = 0x01
	FlagLinkInfo     uint32 = 0x02
	FlagName         uint32 = 0x04
	FlagRelativePath uint32 = 0x08
	FlagWorkingDir   uint32 = 0x10
	FlagArguments    uint32 = 0x20
	FlagIconLocation uint32 = 0x40
	FlagUnicode      uint32 = 0x80
)

// CLSID is the shell link class identifier in on-disk order.
var CLSID = [16]byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}

// Link describes a shell link to serialize. Zero HeaderSize means 0x4C and
// a nil CLSID means the shell link identifier. Section flags are derived
// from which fields are set; Flags adds extra bits.
type Link struct {
	HeaderSize uint32
	CLSID      *[16]byte
	Flags      uint32
	Unicode    bool

	IDList   []byte
	LinkInfo *LinkInfo
	// RawLinkInfo is written verbatim instead of LinkInfo when set.
	RawLinkInfo []byte

	Name         *string
	RelativePath *string
	WorkingDir   *string
	Arguments    *string
	IconLocation *string

	// Trailer is appended after the string data.
	Trailer []byte
}

// LinkInfo describes the LinkInfo section. Empty strings are not written.
type LinkInfo struct {
	LocalBasePath           string
	LocalBasePathUnicode    string
	CommonPathSuffix        string
	CommonPathSuffixUnicode string
	// UnicodeHeader forces the 0x24 header even without Unicode fields.
	UnicodeHeader bool

	Network *NetworkLink
}

// NetworkLink describes the nested network sub-structure.
type NetworkLink struct {
	NetName           string
	NetNameUnicode    string
	DeviceName        string
	DeviceNameUnicode string
}

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Bytes serializes the link.
func (l Link) Bytes() []byte {
	flags := l.Flags
	if l.Unicode {
		flags |= FlagUnicode
	}
	if l.IDList != nil {
		flags |= FlagIDList
	}
	if l.LinkInfo != nil || l.RawLinkInfo != nil {
		flags |= FlagLinkInfo
	}
	strs := []struct {
		flag uint32
		val  *string
	}{
		{FlagName, l.Name},
		{FlagRelativePath, l.RelativePath},
		{FlagWorkingDir, l.WorkingDir},
		{FlagArguments, l.Arguments},
		{FlagIconLocation, l.IconLocation},
	}
	for _, s := range strs {
		if s.val != nil {
			flags |= s.flag
		}
	}

	var b bytes.Buffer
	size := l.HeaderSize
	if size == 0 {
		size = 0x4C
	}
	clsid := CLSID
	if l.CLSID != nil {
		clsid = *l.CLSID
	}
	le(&b, size)
	b.Write(clsid[:])
	le(&b, flags)
	b.Write(make([]byte, 0x4C-4-16-4))

	if l.IDList != nil {
		le(&b, uint16(len(l.IDList)))
		b.Write(l.IDList)
	}
	switch {
	case l.RawLinkInfo != nil:
		b.Write(l.RawLinkInfo)
	case l.LinkInfo != nil:
		b.Write(l.LinkInfo.Bytes())
	}
	for _, s := range strs {
		if s.val == nil {
			continue
		}
		if l.Unicode {
			units := utf16.Encode([]rune(*s.val))
			le(&b, uint16(len(units)))
			le(&b, units)
		} else {
			le(&b, uint16(len(*s.val)))
			b.WriteString(*s.val)
		}
	}
	b.Write(l.Trailer)
	return b.Bytes()
}

// Bytes serializes the LinkInfo section with offsets relative to its start.
func (li LinkInfo) Bytes() []byte {
	unicodeHeader := li.UnicodeHeader || li.LocalBasePathUnicode != "" || li.CommonPathSuffixUnicode != ""
	headerSize := uint32(0x1C)
	if unicodeHeader {
		headerSize = 0x24
	}

	body := &bytes.Buffer{}
	body.Write(make([]byte, headerSize))
	var lbp, cps, lbpU, cpsU, cnrl uint32
	if li.LocalBasePath != "" {
		lbp = cstr(body, li.LocalBasePath)
	}
	if li.Network != nil {
		cnrl = uint32(body.Len())
		body.Write(li.Network.Bytes())
	}
	if li.CommonPathSuffix != "" {
		cps = cstr(body, li.CommonPathSuffix)
	}
	if li.LocalBasePathUnicode != "" {
		lbpU = wstr(body, li.LocalBasePathUnicode)
	}
	if li.CommonPathSuffixUnicode != "" {
		cpsU = wstr(body, li.CommonPathSuffixUnicode)
	}

	out := body.Bytes()
	put := func(off int, v uint32) { binary.LittleEndian.PutUint32(out[off:], v) }
	put(0, uint32(len(out)))
	put(4, headerSize)
	put(16, lbp)
	put(20, cnrl)
	put(24, cps)
	if unicodeHeader {
		put(28, lbpU)
		put(32, cpsU)
	}
	return out
}

// Bytes serializes the network sub-structure.
func (n NetworkLink) Bytes() []byte {
	unicode := n.NetNameUnicode != "" || n.DeviceNameUnicode != ""
	headerSize := 0x14
	if unicode {
		headerSize = 0x1C
	}
	body := &bytes.Buffer{}
	body.Write(make([]byte, headerSize))
	var net, dev, netU, devU uint32
	if n.NetName != "" {
		net = cstr(body, n.NetName)
	}
	if n.DeviceName != "" {
		dev = cstr(body, n.DeviceName)
	}
	if n.NetNameUnicode != "" {
		netU = wstr(body, n.NetNameUnicode)
	}
	if n.DeviceNameUnicode != "" {
		devU = wstr(body, n.DeviceNameUnicode)
	}
	out := body.Bytes()
	put := func(off int, v uint32) { binary.LittleEndian.PutUint32(out[off:], v) }
	put(0, uint32(len(out)))
	put(8, net)
	put(12, dev)
	if unicode {
		put(20, netU)
		put(24, devU)
	}
	return out
}

// UTF16Z encodes s as NUL-terminated UTF-16LE.
func UTF16Z(s string) []byte {
	var b bytes.Buffer
	le(&b, utf16.Encode([]rune(s+"\x00")))
	return b.Bytes()
}

func cstr(b *bytes.Buffer, s string) uint32 {
	off := uint32(b.Len())
	b.WriteString(s)
	b.WriteByte(0)
	return off
}

func wstr(b *bytes.Buffer, s string) uint32 {
	off := uint32(b.Len())
	b.Write(UTF16Z(s))
	return off
}

func le(b *bytes.Buffer, v any) {
	_ = binary.Write(b, binary.LittleEndian, v)
}
