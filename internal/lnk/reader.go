package lnk

import (
	"encoding/binary"
	"errors"
	"io"
)

// Hard caps on variable-length reads, independent of any declared count.
const (
	MaxWideChars = 65535
	MaxByteChars = 1 << 20
)

// stream wraps the link source with the little-endian primitives the
// decoder needs. Fixed-size reads report short reads; capped string reads
// return whatever was available.
type stream struct {
	r io.ReadSeeker
}

func (s *stream) pos() int64 {
	off, err := s.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return off
}

func (s *stream) seek(off int64) error {
	_, err := s.r.Seek(off, io.SeekStart)
	return err
}

func (s *stream) read(v any) error {
	if err := binary.Read(s.r, binary.LittleEndian, v); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncated
		}
		return err
	}
	return nil
}

func (s *stream) u16() (uint16, error) {
	var v uint16
	err := s.read(&v)
	return v, err
}

func (s *stream) u32() (uint32, error) {
	var v uint32
	err := s.read(&v)
	return v, err
}

// full reads exactly n bytes, or as many as were available before EOF.
func (s *stream) full(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(s.r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:got], nil
}

// cString reads bytes up to a NUL, EOF or the cap.
func (s *stream) cString(limit int) []byte {
	out := make([]byte, 0, 64)
	var one [1]byte
	for len(out) < limit {
		if _, err := io.ReadFull(s.r, one[:]); err != nil || one[0] == 0 {
			break
		}
		out = append(out, one[0])
	}
	return out
}

// wString reads UTF-16LE units up to a zero unit, EOF or the cap.
func (s *stream) wString(limit int) []uint16 {
	out := make([]uint16, 0, 64)
	var two [2]byte
	for len(out) < limit {
		if _, err := io.ReadFull(s.r, two[:]); err != nil {
			break
		}
		u := binary.LittleEndian.Uint16(two[:])
		if u == 0 {
			break
		}
		out = append(out, u)
	}
	return out
}
