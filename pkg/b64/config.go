package b64

// LineEnding selects the byte sequence written after each wrapped line.
type LineEnding int

const (
	// LF ends wrapped lines with a single '\n'.
	LF LineEnding = iota
	// CRLF ends wrapped lines with "\r\n".
	CRLF
)

// Len returns the width of the ending in bytes.
func (le LineEnding) Len() int {
	if le == CRLF {
		return 2
	}
	return 1
}

// String returns the configuration-file name of the ending.
func (le LineEnding) String() string {
	if le == CRLF {
		return "crlf"
	}
	return "lf"
}

// LineWrap describes optional line wrapping applied to encoded output.
// The zero value disables wrapping.
type LineWrap struct {
	width  int
	ending LineEnding
}

// NoWrap disables line wrapping.
var NoWrap = LineWrap{}

// Wrap breaks encoded output into lines of width characters separated by
// ending. A width of zero or less disables wrapping.
func Wrap(width int, ending LineEnding) LineWrap {
	if width <= 0 {
		return NoWrap
	}
	return LineWrap{width: width, ending: ending}
}

// Enabled reports whether any wrapping happens.
func (w LineWrap) Enabled() bool { return w.width > 0 }

// Width returns the line width, or 0 when wrapping is disabled.
func (w LineWrap) Width() int { return w.width }

// Ending returns the line ending. Meaningless when wrapping is disabled.
func (w LineWrap) Ending() LineEnding { return w.ending }

// Config captures every knob of an encode or decode call: the alphabet,
// whether encoded output is padded, whether whitespace is dropped before
// decoding, and how encoded output is wrapped. Values are immutable and
// safe to share between goroutines.
//
// The zero value encodes with the standard alphabet, no padding and no
// wrapping.
type Config struct {
	charSet         CharacterSet
	pad             bool
	stripWhitespace bool
	lineWrap        LineWrap
}

// NewConfig builds a configuration from its parts.
func NewConfig(cs CharacterSet, pad, stripWhitespace bool, wrap LineWrap) Config {
	return Config{
		charSet:         cs,
		pad:             pad,
		stripWhitespace: stripWhitespace,
		lineWrap:        wrap,
	}
}

// CharacterSet returns the alphabet in use.
func (c Config) CharacterSet() CharacterSet { return c.charSet }

// Padded reports whether encoded output carries '=' padding.
func (c Config) Padded() bool { return c.pad }

// StripsWhitespace reports whether decode drops whitespace before parsing.
func (c Config) StripsWhitespace() bool { return c.stripWhitespace }

// LineWrap returns the wrapping policy.
func (c Config) LineWrap() LineWrap { return c.lineWrap }

// Canonical configurations.
var (
	// StandardConfig pads with '=' and never wraps.
	StandardConfig = NewConfig(Standard, true, false, NoWrap)

	// MIMEConfig follows RFC 2045 transfer encoding: padded, tolerant of
	// whitespace on decode, wrapped at 76 columns with CRLF endings.
	MIMEConfig = NewConfig(Standard, true, true, Wrap(76, CRLF))

	// URLSafeConfig pads with '=' and uses the URL-safe alphabet.
	URLSafeConfig = NewConfig(URLSafe, true, false, NoWrap)

	// URLSafeNoPadConfig is URLSafeConfig without padding.
	URLSafeNoPadConfig = NewConfig(URLSafe, false, false, NoWrap)
)

// PresetNames lists the names LookupPreset accepts, in display order.
var PresetNames = []string{"standard", "mime", "url", "url-nopad"}

// LookupPreset resolves a canonical configuration by the name used in
// configuration files, CLI flags and API requests.
func LookupPreset(name string) (Config, bool) {
	switch name {
	case "standard":
		return StandardConfig, true
	case "mime":
		return MIMEConfig, true
	case "url", "url-safe":
		return URLSafeConfig, true
	case "url-nopad", "url-safe-nopad":
		return URLSafeNoPadConfig, true
	}
	return Config{}, false
}
