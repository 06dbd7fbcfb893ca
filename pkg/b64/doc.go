// Package b64 encodes and decodes base64 text for Bifrost.
//
// The package implements a configurable base64 engine: two alphabets,
// optional '=' padding, optional whitespace tolerance on decode, and
// optional line wrapping of encoded output. It is the foundation the
// Bifrost CLI and HTTP service are built on.
//
// # Configuration
//
// A Config value captures the behavior of one encode or decode call:
//
//   - CharacterSet: Standard ('+' and '/') or URLSafe ('-' and '_')
//   - padding: whether encoded output is brought to a quad boundary with '='
//   - whitespace: whether decode drops space, LF, tab, CR, VT and FF first
//   - line wrap: whether encoded output is broken into fixed-width lines
//
// Four canonical configurations cover common uses: StandardConfig,
// MIMEConfig (76-column CRLF wrapping, whitespace-tolerant), URLSafeConfig
// and URLSafeNoPadConfig. LookupPreset resolves them by name.
//
// # Usage
//
// Package-level helpers use StandardConfig:
//
//	text := b64.Encode([]byte("hello world"))
//
//	data, err := b64.Decode(text)
//	if err != nil {
//	    return err
//	}
//
// Everything else hangs off a Config:
//
//	text := b64.MIMEConfig.EncodeToString(body)
//
//	buf = b64.URLSafeNoPadConfig.AppendEncode(buf, token)
//
// # Encoding
//
// The encoder computes the exact output size up front with overflow-checked
// arithmetic, grows the destination once, and fills it in three steps: a
// bulk loop that turns each 6 input bytes into 8 characters through a
// single 64-bit big-endian load, a scalar 3-bytes-to-4-chars loop for the
// tail, and an explicit formula for a 1- or 2-byte remainder. Padding and
// line wrapping are separate passes over the already-encoded text; the
// wrap pass reflows in place from the last line backwards. A size that
// would overflow int panics rather than truncating, since every write
// after the size computation relies on it.
//
// # Decoding
//
// The decoder accepts padded and unpadded input regardless of the
// configuration's padding flag; only the alphabet and whitespace handling
// matter on decode. Input splits into complete 8-character chunks handled
// by a bulk loop and a trailing chunk of up to 8 characters. Only the
// trailing chunk may contain padding, so an input that is an exact
// multiple of the chunk size keeps its last chunk out of the bulk loop.
//
// # Error Handling
//
// Decode errors pinpoint the offending input:
//
//   - InvalidByteError carries the absolute offset (after any whitespace
//     strip) and the raw byte for anything outside the alphabet, padding
//     at the start of a quad, or bytes after padding began.
//   - ErrInvalidLength reports a trailing group of 1 or 5 characters,
//     which cannot resolve to whole bytes.
//
// Encoding has no error path.
//
// # Thread Safety
//
// Config values are immutable and safe to share. Concurrent encode and
// decode calls need no synchronization as long as each call's buffers are
// not shared.
package b64
