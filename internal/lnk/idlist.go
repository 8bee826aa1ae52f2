package lnk

import (
	"github.com/open-lnk/open-lnk/internal/winpath"
	"golang.org/x/text/encoding"
)

// MaxCandidateLen caps a candidate string mined from an ID list, in bytes
// for the ANSI scan and in code units for the UTF-16 scan.
const MaxCandidateLen = 4096

// IDListScanner looks for drive ("X:\") and UNC ("\\") shaped strings at
// every offset of an ID list blob, in both ANSI and UTF-16LE form, and keeps
// the best scoring one. It is pattern matching over binary data and may
// return a plausible-looking path that is not the real target.
type IDListScanner struct {
	// Codepage decodes ANSI candidates. Nil keeps the raw bytes.
	Codepage encoding.Encoding
}

// ExtractPath returns the highest scoring candidate. Ties keep the first
// one found.
func (sc *IDListScanner) ExtractPath(blob []byte) (string, bool) {
	best, bestScore := "", -1
	consider := func(cand string, score int) {
		if score > bestScore {
			best, bestScore = cand, score
		}
	}

	for i := 0; i+3 <= len(blob); i++ {
		driveHit := isASCIIAlpha(blob[i]) && blob[i+1] == ':' && isSlash(blob[i+2])
		uncHit := blob[i] == '\\' && blob[i+1] == '\\'
		if !driveHit && !uncHit {
			continue
		}
		raw := boundedBytes(blob[i:], MaxCandidateLen)
		// Scoring uses the raw byte length so codepage expansion does not
		// shift ties.
		score := ScoreCandidate(string(raw))
		if score < 0 {
			continue
		}
		consider(decodeANSI(sc.Codepage, raw), score)
	}

	for i := 0; i+6 <= len(blob); i++ {
		driveHit := isASCIIAlpha(blob[i]) && blob[i+1] == 0 &&
			blob[i+2] == ':' && blob[i+3] == 0 &&
			isSlash(blob[i+4]) && blob[i+5] == 0
		uncHit := blob[i] == '\\' && blob[i+1] == 0 && blob[i+2] == '\\' && blob[i+3] == 0
		if !driveHit && !uncHit {
			continue
		}
		cand := DecodeUTF16(boundedUnits(blob[i:], MaxCandidateLen), 0)
		consider(cand, ScoreCandidate(cand))
	}

	if bestScore < 0 {
		return "", false
	}
	return best, true
}

// ScoreCandidate rates how path-like s is. UNC paths score
// 100 per segment after the share plus 50, drive paths 100 per segment
// after the root plus 40; both add len/8. Anything else scores -1.
func ScoreCandidate(s string) int {
	switch {
	case winpath.IsUNCShaped(s):
		return 100*uncRestSegments(s) + 50 + len(s)/8
	case winpath.IsDriveShaped(s):
		return 100*countSegments(s[3:]) + 40 + len(s)/8
	}
	return -1
}

func uncRestSegments(s string) int {
	i := skipSlashes(s, 0)
	i = skipSegment(s, i)
	if i == len(s) {
		return 0
	}
	i = skipSegment(s, skipSlashes(s, i))
	if i == len(s) {
		return 0
	}
	return countSegments(s[i:])
}

func countSegments(s string) int {
	n, in := 0, false
	for i := 0; i < len(s); i++ {
		if isSlash(s[i]) {
			if in {
				n++
			}
			in = false
			continue
		}
		in = true
	}
	if in {
		n++
	}
	return n
}

func skipSlashes(s string, i int) int {
	for i < len(s) && isSlash(s[i]) {
		i++
	}
	return i
}

func skipSegment(s string, i int) int {
	for i < len(s) && !isSlash(s[i]) {
		i++
	}
	return i
}

// boundedBytes cuts b at a NUL, a control byte other than tab, or limit.
func boundedBytes(b []byte, limit int) []byte {
	n := 0
	for n < len(b) && n < limit {
		c := b[n]
		if c == 0 || (c < 0x20 && c != '\t') {
			break
		}
		n++
	}
	return b[:n]
}

// boundedUnits is boundedBytes for UTF-16LE code units.
func boundedUnits(b []byte, limit int) []uint16 {
	units := make([]uint16, 0, 64)
	for i := 0; i+1 < len(b) && len(units) < limit; i += 2 {
		u := uint16(b[i]) | uint16(b[i+1])<<8
		if u == 0 || (u < 0x20 && u != '\t') {
			break
		}
		units = append(units, u)
	}
	return units
}

func isASCIIAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isSlash(c byte) bool { return c == '\\' || c == '/' }
