package lnk

// Record holds the string fields decoded from a shell link. Every field is
// optional: nil means the file did not carry it. Where a field comes in an
// ANSI and a Unicode variant, the Unicode one is authoritative and the ANSI
// one is only read when the Unicode variant is absent or empty.
type Record struct {
	Flags    LinkFlags `json:"flags" yaml:"flags"`
	FileSize uint32    `json:"file_size" yaml:"file_size"`

	LocalBasePath        *string `json:"local_base_path" yaml:"local_base_path"`
	LocalBasePathUnicode *string `json:"local_base_path_unicode" yaml:"local_base_path_unicode"`

	NetName           *string `json:"net_name" yaml:"net_name"`
	NetNameUnicode    *string `json:"net_name_unicode" yaml:"net_name_unicode"`
	DeviceName        *string `json:"device_name" yaml:"device_name"`
	DeviceNameUnicode *string `json:"device_name_unicode" yaml:"device_name_unicode"`

	CommonPathSuffix        *string `json:"common_path_suffix" yaml:"common_path_suffix"`
	CommonPathSuffixUnicode *string `json:"common_path_suffix_unicode" yaml:"common_path_suffix_unicode"`

	// IDListPath is a low-confidence path mined from the opaque ID list.
	IDListPath *string `json:"id_list_path" yaml:"id_list_path"`

	NameString   *string `json:"name_string" yaml:"name_string"`
	RelativePath *string `json:"relative_path" yaml:"relative_path"`
	WorkingDir   *string `json:"working_dir" yaml:"working_dir"`
	Arguments    *string `json:"arguments" yaml:"arguments"`
	IconLocation *string `json:"icon_location" yaml:"icon_location"`
}

// LocalBase returns the preferred local base path.
func (r *Record) LocalBase() string { return prefer(r.LocalBasePathUnicode, r.LocalBasePath) }

// Net returns the preferred network share root.
func (r *Record) Net() string { return prefer(r.NetNameUnicode, r.NetName) }

// Device returns the preferred mapped device name, e.g. "M:".
func (r *Record) Device() string { return prefer(r.DeviceNameUnicode, r.DeviceName) }

// Suffix returns the preferred common path suffix.
func (r *Record) Suffix() string { return prefer(r.CommonPathSuffixUnicode, r.CommonPathSuffix) }

// Field is a labelled record value used for diagnostics.
type Field struct {
	Label string
	Value *string
}

// DiagnosticFields lists the fields that matter for locating the target, in
// the order they are reported when resolution fails.
func (r *Record) DiagnosticFields() []Field {
	return []Field{
		{"LocalBasePath", r.LocalBasePath},
		{"LocalBasePathU", r.LocalBasePathUnicode},
		{"NetName (CNRL)", r.NetName},
		{"NetNameU (CNRL)", r.NetNameUnicode},
		{"DeviceName (CNRL)", r.DeviceName},
		{"DeviceNameU (CNRL)", r.DeviceNameUnicode},
		{"CommonPathSuffix", r.CommonPathSuffix},
		{"CommonPathSuffixU", r.CommonPathSuffixUnicode},
		{"IDListPath", r.IDListPath},
		{"RelativePath", r.RelativePath},
		{"WorkingDir", r.WorkingDir},
	}
}

func prefer(unicode, ansi *string) string {
	if unicode != nil && *unicode != "" {
		return *unicode
	}
	if ansi != nil {
		return *ansi
	}
	return ""
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string { return &s }
