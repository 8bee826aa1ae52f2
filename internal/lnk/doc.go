// Package lnk decodes Windows Shell Link (.lnk) files into a Record of
// optional string fields and builds the Windows-style target path those
// fields describe.
//
// The decoder reads the fixed 76-byte header, then the optional sections
// gated by the header's link flags: the target ID list, LinkInfo (with its
// nested network sub-structure) and the StringData entries. Sections that
// are rare or irrelevant to locating the target are skipped. Input is
// treated as untrusted: every offset is bounds-checked against its section
// and every variable-length read is capped.
package lnk
