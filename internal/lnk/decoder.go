package lnk

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// HeaderSize is the only header size a shell link may declare.
const HeaderSize = 0x4C

// MaxFileSize bounds how much of a file DecodeFile loads.
const MaxFileSize = 64 << 20

const (
	linkInfoMinSize       = 0x1C
	linkInfoUnicodeHeader = 0x24
	networkLinkMinSize    = 0x14
	networkLinkUnicode    = 0x1C
)

// shellLinkCLSID is 00021401-0000-0000-C000-000000000046 in on-disk order.
var shellLinkCLSID = [16]byte{0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}

type header struct {
	HeaderSize     uint32
	CLSID          [16]byte
	LinkFlags      uint32
	FileAttributes uint32
	CreationTime   uint64
	AccessTime     uint64
	WriteTime      uint64
	FileSize       uint32
	IconIndex      uint32
	ShowCommand    uint32
	HotKey         uint16
	Reserved1      uint16
	Reserved2      uint32
	Reserved3      uint32
}

type linkInfoHeader struct {
	HeaderSize             uint32
	Flags                  uint32
	VolumeIDOffset         uint32
	LocalBasePathOffset    uint32
	NetworkLinkOffset      uint32
	CommonPathSuffixOffset uint32
}

type networkLinkHeader struct {
	Flags            uint32
	NetNameOffset    uint32
	DeviceNameOffset uint32
	ProviderType     uint32
}

// PathExtractor mines a low-confidence Windows path from an ID list blob.
type PathExtractor interface {
	ExtractPath(blob []byte) (string, bool)
}

// Decoder parses shell links. The zero value is not usable; call NewDecoder.
type Decoder struct {
	codepage     encoding.Encoding
	extractor    PathExtractor
	extractorSet bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithCodepage sets the encoding used for non-Unicode string fields.
func WithCodepage(enc encoding.Encoding) Option {
	return func(d *Decoder) {
		if enc != nil {
			d.codepage = enc
		}
	}
}

// WithExtractor replaces the ID list heuristic. A nil extractor disables it.
func WithExtractor(x PathExtractor) Option {
	return func(d *Decoder) {
		d.extractor = x
		d.extractorSet = true
	}
}

// NewDecoder returns a decoder using Windows-1252 for ANSI fields and the
// IDListScanner heuristic unless configured otherwise.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{codepage: charmap.Windows1252}
	for _, opt := range opts {
		opt(d)
	}
	if !d.extractorSet {
		d.extractor = &IDListScanner{Codepage: d.codepage}
	}
	return d
}

// Decode parses a shell link with the default decoder.
func Decode(r io.ReadSeeker) (*Record, error) {
	return NewDecoder().Decode(r)
}

// DecodeFile loads path into memory and decodes it.
func (d *Decoder) DecodeFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shortcut %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize))
	if err != nil {
		return nil, fmt.Errorf("reading shortcut %s: %w", path, err)
	}
	rec, err := d.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Decode parses r. A returned error is always a *DecodeError and no partial
// record is returned with it.
func (d *Decoder) Decode(r io.ReadSeeker) (*Record, error) {
	s := &stream{r: r}

	var h header
	if err := s.read(&h); err != nil {
		return nil, &DecodeError{Section: "header", Offset: 0, Err: err}
	}
	if h.HeaderSize != HeaderSize {
		return nil, &DecodeError{Section: "header", Offset: 0,
			Err: fmt.Errorf("%w: size 0x%X, want 0x%X", ErrInvalidHeader, h.HeaderSize, HeaderSize)}
	}
	if h.CLSID != shellLinkCLSID {
		return nil, &DecodeError{Section: "header", Offset: 4,
			Err: fmt.Errorf("%w: class identifier mismatch", ErrInvalidHeader)}
	}

	flags := LinkFlags(h.LinkFlags)
	rec := &Record{Flags: flags, FileSize: h.FileSize}

	if flags.Has(HasLinkTargetIDList) {
		if err := d.readIDList(s, rec); err != nil {
			return nil, err
		}
	}
	if flags.Has(HasLinkInfo) {
		if err := d.readLinkInfo(s, rec); err != nil {
			return nil, err
		}
	}

	unicode := flags.Has(IsUnicode)
	for _, sd := range []struct {
		flag LinkFlags
		dst  **string
	}{
		{HasName, &rec.NameString},
		{HasRelativePath, &rec.RelativePath},
		{HasWorkingDir, &rec.WorkingDir},
		{HasArguments, &rec.Arguments},
		{HasIconLocation, &rec.IconLocation},
	} {
		if flags.Has(sd.flag) {
			*sd.dst = d.readStringData(s, unicode)
		}
	}
	return rec, nil
}

func (d *Decoder) readIDList(s *stream, rec *Record) error {
	start := s.pos()
	size, err := s.u16()
	if err != nil {
		return &DecodeError{Section: "id list", Offset: start, Err: err}
	}
	blob, err := s.full(int(size))
	if err != nil {
		return &DecodeError{Section: "id list", Offset: start, Err: err}
	}
	if len(blob) < int(size) {
		return &DecodeError{Section: "id list", Offset: start,
			Err: fmt.Errorf("%w: %d of %d bytes", ErrTruncated, len(blob), size)}
	}
	if d.extractor != nil {
		if p, ok := d.extractor.ExtractPath(blob); ok {
			rec.IDListPath = ptr(p)
		}
	}
	return nil
}

func (d *Decoder) readLinkInfo(s *stream, rec *Record) error {
	start := s.pos()
	fail := func(err error) error {
		return &DecodeError{Section: "link info", Offset: start, Err: err}
	}

	size, err := s.u32()
	if err != nil {
		return fail(err)
	}
	if size < linkInfoMinSize {
		return fail(fmt.Errorf("%w: link info size 0x%X", ErrMalformed, size))
	}
	var li linkInfoHeader
	if err := s.read(&li); err != nil {
		return fail(err)
	}
	var baseOffU, suffixOffU uint32
	if li.HeaderSize >= linkInfoUnicodeHeader {
		if baseOffU, err = s.u32(); err != nil {
			return fail(err)
		}
		if suffixOffU, err = s.u32(); err != nil {
			return fail(err)
		}
	}

	inside := func(off uint32) bool { return off != 0 && off < size }
	at := func(off uint32) bool { return s.seek(start+int64(off)) == nil }

	if inside(baseOffU) && at(baseOffU) {
		rec.LocalBasePathUnicode = ptr(DecodeUTF16(s.wString(MaxWideChars), 0))
	}
	if value(rec.LocalBasePathUnicode) == "" && inside(li.LocalBasePathOffset) && at(li.LocalBasePathOffset) {
		rec.LocalBasePath = ptr(d.ansi(s.cString(MaxByteChars)))
	}
	if inside(suffixOffU) && at(suffixOffU) {
		rec.CommonPathSuffixUnicode = ptr(DecodeUTF16(s.wString(MaxWideChars), 0))
	}
	if value(rec.CommonPathSuffixUnicode) == "" && inside(li.CommonPathSuffixOffset) && at(li.CommonPathSuffixOffset) {
		rec.CommonPathSuffix = ptr(d.ansi(s.cString(MaxByteChars)))
	}
	if inside(li.NetworkLinkOffset) {
		d.readNetworkLink(s, rec, start+int64(li.NetworkLinkOffset), size-li.NetworkLinkOffset)
	}

	if err := s.seek(start + int64(size)); err != nil {
		return fail(err)
	}
	return nil
}

// readNetworkLink parses the nested network sub-structure. Every failure
// here is soft: the affected fields stay absent.
func (d *Decoder) readNetworkLink(s *stream, rec *Record, start int64, avail uint32) {
	if s.seek(start) != nil {
		return
	}
	size, err := s.u32()
	if err != nil || size < networkLinkMinSize || size > avail {
		return
	}
	var nl networkLinkHeader
	if s.read(&nl) != nil {
		return
	}
	var netOffU, devOffU uint32
	if size >= networkLinkUnicode {
		if netOffU, err = s.u32(); err != nil {
			netOffU = 0
		}
		if devOffU, err = s.u32(); err != nil {
			devOffU = 0
		}
	}

	inside := func(off uint32) bool { return off != 0 && off < size }
	at := func(off uint32) bool { return s.seek(start+int64(off)) == nil }

	if inside(netOffU) && at(netOffU) {
		rec.NetNameUnicode = ptr(DecodeUTF16(s.wString(MaxWideChars), 0))
	}
	if value(rec.NetNameUnicode) == "" && inside(nl.NetNameOffset) && at(nl.NetNameOffset) {
		rec.NetName = ptr(d.ansi(s.cString(MaxByteChars)))
	}
	if inside(devOffU) && at(devOffU) {
		rec.DeviceNameUnicode = ptr(DecodeUTF16(s.wString(MaxWideChars), 0))
	}
	if value(rec.DeviceNameUnicode) == "" && inside(nl.DeviceNameOffset) && at(nl.DeviceNameOffset) {
		rec.DeviceName = ptr(d.ansi(s.cString(MaxByteChars)))
	}
}

// readStringData reads one counted StringData entry. A missing count leaves
// the field absent; a short body yields what was read.
func (d *Decoder) readStringData(s *stream, unicode bool) *string {
	count, err := s.u16()
	if err != nil {
		return nil
	}
	if count == 0 {
		return ptr("")
	}
	if unicode {
		b, err := s.full(int(count) * 2)
		if err != nil {
			return nil
		}
		return ptr(DecodeUTF16LE(b, int(count)))
	}
	b, err := s.full(int(count))
	if err != nil {
		return nil
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return ptr(d.ansi(b))
}

func (d *Decoder) ansi(b []byte) string {
	return decodeANSI(d.codepage, b)
}

func decodeANSI(enc encoding.Encoding, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if enc == nil {
		return string(b)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

var codepageAliases = map[string]string{
	"cp437": "IBM437",
	"cp850": "IBM850",
	"cp852": "IBM852",
	"cp866": "IBM866",
	"ansi":  "windows-1252",
}

// LookupCodepage resolves an IANA or Windows codepage name such as
// "windows-1252", "cp1251" or "utf-8". An empty name selects Windows-1252.
func LookupCodepage(name string) (encoding.Encoding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return charmap.Windows1252, nil
	}
	if alias, ok := codepageAliases[name]; ok {
		name = alias
	} else if strings.HasPrefix(name, "cp125") {
		name = "windows-" + strings.TrimPrefix(name, "cp")
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown codepage %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("codepage %q is not supported", name)
	}
	return enc, nil
}
