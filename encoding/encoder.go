package encoding

import (
	"github.com/chrismooredev/cesu8str/format"
)

// Encode converts valid UTF-8 input to the target variant.
//
// Only two byte patterns ever need rewriting: four-byte UTF-8 sequences
// (code points >= U+10000), which become a surrogate pair of two
// three-byte sequences, and, for format.VariantJava only, the null byte
// 0x00, which becomes the overlong escape 0xC0 0x80. When the input
// contains neither pattern, Encode returns src itself without copying.
//
// Encode assumes src is valid UTF-8 and never fails on that assumption;
// it does not validate. Bytes it has no reason to rewrite pass through
// untouched, and a four-byte lead truncated by the end of the buffer is
// passed through verbatim rather than read out of bounds. Callers that
// cannot guarantee the precondition should run utf8.Valid (or Compatible)
// first.
//
// Parameters:
//   - src: Valid UTF-8 input buffer
//   - v: Target variant (format.VariantStandard or format.VariantJava)
//
// Returns:
//   - []byte: Encoded buffer; src itself when no rewriting was needed
func Encode(src []byte, v format.Variant) []byte {
	extra := encodeGrowth(src, v)
	if extra == 0 {
		return src
	}

	dst := make([]byte, 0, len(src)+extra)
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == 0x00 && v == format.VariantJava:
			dst = append(dst, 0xC0, 0x80)
			i++
		case c >= 0xF0 && c <= 0xF4 && i+3 < len(src):
			cp := rune(c&0x07)<<18 |
				rune(src[i+1]&0x3F)<<12 |
				rune(src[i+2]&0x3F)<<6 |
				rune(src[i+3]&0x3F)
			hi, lo := splitSurrogate(cp)
			dst = appendSurrogate(dst, hi)
			dst = appendSurrogate(dst, lo)
			i += 4
		default:
			dst = append(dst, c)
			i++
		}
	}

	return dst
}

// encodeGrowth scans src for patterns that must be rewritten and returns
// the number of extra output bytes they require. Zero means the fast
// path applies and src can be returned as-is.
//
// Each four-byte sequence grows by two bytes (4 -> 3+3) and each escaped
// null by one (1 -> 2), so the result doubles as the exact allocation
// size for the rewrite pass.
func encodeGrowth(src []byte, v format.Variant) int {
	extra := 0
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == 0x00 && v == format.VariantJava:
			extra++
			i++
		case c >= 0xF0 && c <= 0xF4 && i+3 < len(src):
			extra += 2
			i += 4
		default:
			i++
		}
	}

	return extra
}

// Compatible reports whether valid UTF-8 input already needs no
// rewriting for the target variant, i.e. whether Encode would take the
// zero-copy fast path. This is the dominant real-world case for
// ASCII/BMP text.
func Compatible(src []byte, v format.Variant) bool {
	return encodeGrowth(src, v) == 0
}
