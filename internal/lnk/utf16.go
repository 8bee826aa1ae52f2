package lnk

import (
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

// DecodeUTF16 converts UTF-16 code units to UTF-8. Decoding stops at the
// first zero unit or after max units when max > 0. A valid surrogate pair
// becomes one supplementary code point; a lone surrogate becomes U+FFFD.
func DecodeUTF16(units []uint16, max int) string {
	n := len(units)
	if max > 0 && max < n {
		n = max
	}
	for i := 0; i < n; i++ {
		if units[i] == 0 {
			n = i
			break
		}
	}

	buf := make([]byte, 0, n*3)
	for i := 0; i < n; i++ {
		u := rune(units[i])
		switch {
		case !utf16.IsSurrogate(u):
			buf = utf8.AppendRune(buf, u)
		case u < 0xDC00 && i+1 < n:
			if r := utf16.DecodeRune(u, rune(units[i+1])); r != utf8.RuneError {
				buf = utf8.AppendRune(buf, r)
				i++
				continue
			}
			buf = utf8.AppendRune(buf, utf8.RuneError)
		default:
			buf = utf8.AppendRune(buf, utf8.RuneError)
		}
	}
	return string(buf)
}

// DecodeUTF16LE decodes little-endian UTF-16 bytes. A trailing odd byte is
// ignored.
func DecodeUTF16LE(b []byte, max int) string {
	return DecodeUTF16(unitsLE(b), max)
}

func unitsLE(b []byte) []uint16 {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return units
}
