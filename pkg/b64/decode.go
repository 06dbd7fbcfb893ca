package b64

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidLength reports encoded text whose trailing group leaves a 6-bit
// remainder that cannot resolve to whole bytes.
var ErrInvalidLength = errors.New("encoded text cannot have a 6-bit remainder")

// InvalidByteError reports the first byte that cannot appear where it does:
// a byte outside the active alphabet, or padding in a position padding may
// not occupy. Offset is absolute within the whitespace-stripped input.
type InvalidByteError struct {
	Offset int
	Byte   byte
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("invalid byte %q at offset %d", e.Byte, e.Offset)
}

// Decode parses base64 text under StandardConfig.
func Decode(s string) ([]byte, error) {
	return StandardConfig.DecodeString(s)
}

// DecodeString parses base64 text and returns the decoded bytes.
func (c Config) DecodeString(s string) ([]byte, error) {
	return c.AppendDecode(nil, []byte(s))
}

// AppendDecode decodes src and appends the bytes to dst, returning the
// extended slice. Both padded and unpadded input are accepted regardless
// of the configuration's padding flag. On error the returned slice keeps
// dst's original length and content.
func (c Config) AppendDecode(dst, src []byte) ([]byte, error) {
	if c.stripWhitespace {
		src = stripWhitespace(src)
	}

	table := c.charSet.decodeTable()

	// Two spare bytes on top of the decoded bound: the bulk loop stores a
	// full 8-byte word for each 6-byte unit, and the overhang of the last
	// store is cut off after the loop.
	start := len(dst)
	dst = slices.Grow(dst, c.DecodedLen(len(src))+2)

	// The bulk path only handles complete 8-char chunks that cannot carry
	// padding. An input that is an exact multiple of the chunk size may
	// still end with '=', so its last chunk goes to the trailing pass too.
	trailing := len(src) % 8
	if trailing == 0 && len(src) > 0 {
		trailing = 8
	}
	fastLen := len(src) - trailing

	dst = dst[:start+fastLen/8*6+2]
	out := start

	for si := 0; si < fastLen; si += 8 {
		accum, bad := decodeChunk(table, src[si:si+8])
		if bad >= 0 {
			return dst[:start], &InvalidByteError{Offset: si + bad, Byte: src[si+bad]}
		}
		binary.BigEndian.PutUint64(dst[out:], accum)
		out += 6
	}
	dst = dst[:out]

	// Trailing pass: up to 8 chars, the only place padding may appear.
	// Morsels pack most-significant first into a register, like the bulk path.
	var (
		leftover     uint64
		morsels      int
		paddingBytes int
		firstPadding int
	)
	for i := 0; i < trailing; i++ {
		b := src[fastLen+i]

		if b == padByte {
			// a quad cannot begin with padding
			if i%4 < 2 {
				return dst[:start], &InvalidByteError{Offset: fastLen + i, Byte: b}
			}
			if paddingBytes == 0 {
				firstPadding = i
			}
			paddingBytes++
			continue
		}

		// padding must be a suffix; report the first pad byte
		if paddingBytes > 0 {
			return dst[:start], &InvalidByteError{Offset: fastLen + firstPadding, Byte: padByte}
		}

		m := table[b]
		if m == invalidValue {
			return dst[:start], &InvalidByteError{Offset: fastLen + i, Byte: b}
		}
		leftover |= uint64(m) << uint(58-6*morsels)
		morsels++
	}

	var usableBits int
	switch morsels {
	case 0:
		usableBits = 0
	case 2:
		usableBits = 8
	case 3:
		usableBits = 16
	case 4:
		usableBits = 24
	case 6:
		usableBits = 32
	case 7:
		usableBits = 40
	case 8:
		usableBits = 48
	default:
		// 1 or 5 morsels strand bits that cannot form a byte
		return dst[:start], ErrInvalidLength
	}

	for done := 0; done < usableBits; done += 8 {
		dst = append(dst, byte(leftover>>uint(56-done)))
	}

	return dst, nil
}

// DecodedLen returns an upper bound on the bytes decoded from n characters
// of input. The bound is exact for unpadded input with no whitespace.
func (c Config) DecodedLen(n int) int {
	return n/4*3 + n%4*3/4
}

// decodeChunk probes eight input bytes against the reverse table and packs
// them most-significant first as 6-bit groups into the top 48 bits of a
// word. The second result is the index of the first invalid byte, or -1.
func decodeChunk(table *[256]byte, chunk []byte) (uint64, int) {
	var accum uint64
	for k, b := range chunk[:8] {
		m := table[b]
		if m == invalidValue {
			return 0, k
		}
		accum |= uint64(m) << uint(58-6*k)
	}
	return accum, -1
}

// stripWhitespace copies src without the characters MIME tolerates around
// encoded lines: space, LF, tab, CR, vertical tab and form feed.
func stripWhitespace(src []byte) []byte {
	out := make([]byte, 0, len(src))
	for _, b := range src {
		switch b {
		case ' ', '\n', '\t', '\r', '\v', '\f':
		default:
			out = append(out, b)
		}
	}
	return out
}
