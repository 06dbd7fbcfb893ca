package b64

import (
	"encoding/binary"
	"math/bits"
	"slices"
)

const lowSixBits = 0x3F

// padByte brings encoded output up to a quad boundary.
const padByte = 0x3D

// Encode returns the base64 text for src under StandardConfig.
func Encode(src []byte) string {
	return StandardConfig.EncodeToString(src)
}

// EncodeToString returns the base64 text for src.
func (c Config) EncodeToString(src []byte) string {
	return string(c.AppendEncode(nil, src))
}

// AppendEncode appends the base64 text for src to dst and returns the
// extended slice. The destination grows by exactly EncodedLen(len(src)).
func (c Config) AppendEncode(dst, src []byte) []byte {
	total := c.EncodedLen(len(src))

	start := len(dst)
	dst = slices.Grow(dst, total)
	dst = dst[:start+total]
	out := dst[start:]

	n := encodeCore(out, src, c.charSet.encodeTable())
	if c.pad {
		n += addPadding(len(src), out[n:])
	}
	if c.lineWrap.Enabled() {
		n += lineWrap(out, n, c.lineWrap.width, c.lineWrap.ending)
	}

	return dst[:start+n]
}

// EncodedLen returns the exact output length for n input bytes, including
// padding and line wrap overhead. Panics when the length overflows int;
// the encoder fills a buffer of exactly this size with no further bounds
// reasoning, so a wrapped length must never escape.
func (c Config) EncodedLen(n int) int {
	quads, ok := mulInt(n/3, 4)
	if !ok {
		panic("encoded size overflows int")
	}

	size := quads
	if rem := n % 3; rem > 0 {
		extra := 4
		if !c.pad {
			// remainder of 1 encodes to 2 chars, remainder of 2 to 3
			extra = rem + 1
		}
		size, ok = addInt(quads, extra)
		if !ok {
			panic("encoded size overflows int")
		}
	}

	if !c.lineWrap.Enabled() {
		return size
	}
	p, ok := lineWrapParameters(size, c.lineWrap.width, c.lineWrap.ending)
	if !ok {
		panic("encoded size overflows int")
	}
	return p.totalLen
}

// encodeCore writes the unpadded base64 text for src into dst, which must
// hold 4*(len(src)/3) bytes plus 2 or 3 for a 1- or 2-byte remainder.
// Returns the number of characters written. Every 6-bit value has a table
// entry, so there is no error path.
func encodeCore(dst, src []byte, table *[64]byte) int {
	di, si := 0, 0

	// The bulk path reads 8 bytes per iteration but consumes only 6, so it
	// stops while 2 spare bytes remain past the current unit. Those bytes
	// are read again, not skipped, on the next iteration.
	for si+8 <= len(src) {
		v := binary.BigEndian.Uint64(src[si:])
		dst[di+0] = table[v>>58&lowSixBits]
		dst[di+1] = table[v>>52&lowSixBits]
		dst[di+2] = table[v>>46&lowSixBits]
		dst[di+3] = table[v>>40&lowSixBits]
		dst[di+4] = table[v>>34&lowSixBits]
		dst[di+5] = table[v>>28&lowSixBits]
		dst[di+6] = table[v>>22&lowSixBits]
		dst[di+7] = table[v>>16&lowSixBits]
		si += 6
		di += 8
	}

	for si+3 <= len(src) {
		dst[di+0] = table[src[si]>>2]
		dst[di+1] = table[(src[si]<<4|src[si+1]>>4)&lowSixBits]
		dst[di+2] = table[(src[si+1]<<2|src[si+2]>>6)&lowSixBits]
		dst[di+3] = table[src[si+2]&lowSixBits]
		si += 3
		di += 4
	}

	switch len(src) - si {
	case 2:
		dst[di+0] = table[src[si]>>2]
		dst[di+1] = table[(src[si]<<4|src[si+1]>>4)&lowSixBits]
		dst[di+2] = table[src[si+1]<<2&lowSixBits]
		di += 3
	case 1:
		dst[di+0] = table[src[si]>>2]
		dst[di+1] = table[src[si]<<4&lowSixBits]
		di += 2
	}

	return di
}

// addPadding writes the pad characters owed for inputLen bytes of input and
// returns how many it wrote (0 to 2).
func addPadding(inputLen int, out []byte) int {
	n := (3 - inputLen%3) % 3
	for i := 0; i < n; i++ {
		out[i] = padByte
	}
	return n
}

const maxInt = int(^uint(0) >> 1)

// mulInt multiplies two non-negative ints, reporting whether the product
// fits in an int.
func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, false
	}
	return int(lo), true
}

// addInt adds two non-negative ints, reporting whether the sum fits.
func addInt(a, b int) (int, bool) {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || sum > uint64(maxInt) {
		return 0, false
	}
	return int(sum), true
}
