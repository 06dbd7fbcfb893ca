package b64

// CharacterSet selects which base64 alphabet the codec uses.
type CharacterSet int

const (
	// Standard is the RFC 4648 alphabet, using '+' and '/'.
	Standard CharacterSet = iota
	// URLSafe is the RFC 4648 URL- and filename-safe alphabet, using '-' and '_'.
	URLSafe
)

// String returns the preset-style name of the character set.
func (cs CharacterSet) String() string {
	switch cs {
	case Standard:
		return "standard"
	case URLSafe:
		return "url-safe"
	default:
		return "unknown"
	}
}

// invalidValue marks bytes outside the active alphabet in the reverse tables.
const invalidValue = 0xFF

func (cs CharacterSet) encodeTable() *[64]byte {
	if cs == URLSafe {
		return &urlSafeEncode
	}
	return &standardEncode
}

func (cs CharacterSet) decodeTable() *[256]byte {
	if cs == URLSafe {
		return &urlSafeDecode
	}
	return &standardDecode
}

var standardEncode = [64]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'a', 'b', 'c', 'd', 'e', 'f',
	'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v',
	'w', 'x', 'y', 'z', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '/',
}

var urlSafeEncode = [64]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'a', 'b', 'c', 'd', 'e', 'f',
	'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v',
	'w', 'x', 'y', 'z', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-', '_',
}

var (
	standardDecode = reverseTable(&standardEncode)
	urlSafeDecode  = reverseTable(&urlSafeEncode)
)

// reverseTable derives the 256-entry reverse table for a forward table.
// Every byte outside the alphabet maps to invalidValue.
func reverseTable(enc *[64]byte) [256]byte {
	var dec [256]byte
	for i := range dec {
		dec[i] = invalidValue
	}
	for v, c := range enc {
		dec[c] = byte(v)
	}
	return dec
}
