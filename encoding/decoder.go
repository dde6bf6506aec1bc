package encoding

import (
	"unicode/utf8"

	"github.com/chrismooredev/cesu8str/errs"
	"github.com/chrismooredev/cesu8str/format"
)

// Decode converts a buffer in the source variant to standard UTF-8.
//
// The scan walks one multi-byte unit at a time, left to right, and fails
// atomically on the first malformed unit: no partial output is ever
// returned. When no unit needs rewriting (no surrogate pairs and, for
// format.VariantJava, no null escapes), Decode returns src itself
// without copying.
//
// Parameters:
//   - src: Buffer claimed to be valid CESU-8 or Modified UTF-8
//   - v: Source variant (format.VariantStandard or format.VariantJava)
//
// Returns:
//   - []byte: Decoded UTF-8 buffer; src itself when no rewriting was needed
//   - error: *errs.DecodeError identifying the first offending byte offset
func Decode(src []byte, v format.Variant) ([]byte, error) {
	var dst []byte
	for i := 0; i < len(src); {
		cp, size, rewritten, derr := decodeUnit(src, i, v)
		if derr != nil {
			return nil, derr
		}
		if rewritten && dst == nil {
			// First rewrite: abandon the fast path and copy the
			// unaffected prefix. Decoding never grows the buffer
			// (6 -> 4 for pairs, 2 -> 1 for the null escape).
			dst = make([]byte, i, len(src))
			copy(dst, src[:i])
		}
		if dst != nil {
			if rewritten {
				dst = utf8.AppendRune(dst, cp)
			} else {
				dst = append(dst, src[i:i+size]...)
			}
		}
		i += size
	}

	if dst == nil {
		return src, nil
	}

	return dst, nil
}

// decodeUnit decodes the unit beginning at src[i] under variant v.
//
// It returns the unit's code point, its width in input bytes (6 for a
// surrogate pair, which is consumed as one unit), and whether the unit's
// standard UTF-8 form differs from its bytes in src. Malformed units
// yield a *errs.DecodeError whose offset is i, or the offset of the
// specific byte at fault.
func decodeUnit(src []byte, i int, v format.Variant) (cp rune, size int, rewritten bool, derr *errs.DecodeError) {
	c := src[i]
	switch {
	case c < 0x80:
		if c == 0x00 && v == format.VariantJava {
			// Modified UTF-8 strings live in null-terminated contexts;
			// a raw null byte only appears as the 0xC0 0x80 escape.
			return 0, 0, false, &errs.DecodeError{Err: errs.ErrDisallowedCodePoint, Offset: i}
		}

		return rune(c), 1, false, nil

	case c < 0xC0:
		// Stray continuation byte.
		return 0, 0, false, &errs.DecodeError{Err: errs.ErrInvalidSequence, Offset: i}

	case c < 0xE0:
		if i+1 >= len(src) {
			return 0, 0, false, &errs.DecodeError{Err: errs.ErrInvalidSequence, Offset: i}
		}
		c1 := src[i+1]
		if c1&0xC0 != 0x80 {
			return 0, 0, false, &errs.DecodeError{Err: errs.ErrInvalidSequence, Offset: i}
		}
		if c == 0xC0 || c == 0xC1 {
			// Overlong two-byte forms, except the Java null escape.
			if c == 0xC0 && c1 == 0x80 && v == format.VariantJava {
				return 0, 2, true, nil
			}

			return 0, 0, false, &errs.DecodeError{Err: errs.ErrInvalidSequence, Offset: i}
		}

		return rune(c&0x1F)<<6 | rune(c1&0x3F), 2, false, nil

	case c < 0xF0:
		if i+2 >= len(src) {
			return 0, 0, false, &errs.DecodeError{Err: errs.ErrInvalidSequence, Offset: i}
		}
		c1, c2 := src[i+1], src[i+2]
		if c1&0xC0 != 0x80 || c2&0xC0 != 0x80 {
			return 0, 0, false, &errs.DecodeError{Err: errs.ErrInvalidSequence, Offset: i}
		}
		cp = rune(c&0x0F)<<12 | rune(c1&0x3F)<<6 | rune(c2&0x3F)
		if cp < 0x800 {
			// Overlong three-byte form.
			return 0, 0, false, &errs.DecodeError{Err: errs.ErrInvalidSequence, Offset: i}
		}
		switch {
		case cp < surr1 || cp >= surr3:
			return cp, 3, false, nil
		case cp < surr2:
			// High surrogate: the low half must follow immediately as
			// another three-byte sequence.
			if i+5 >= len(src) {
				return 0, 0, false, &errs.DecodeError{Err: errs.ErrUnpairedSurrogate, Offset: i}
			}
			c3, c4, c5 := src[i+3], src[i+4], src[i+5]
			if c3 != 0xED || c4&0xC0 != 0x80 || c5&0xC0 != 0x80 {
				return 0, 0, false, &errs.DecodeError{Err: errs.ErrUnpairedSurrogate, Offset: i}
			}
			lo := rune(0xD)<<12 | rune(c4&0x3F)<<6 | rune(c5&0x3F)
			if lo < surr2 || lo >= surr3 {
				return 0, 0, false, &errs.DecodeError{Err: errs.ErrUnpairedSurrogate, Offset: i}
			}

			return combineSurrogates(cp, lo), 6, true, nil
		default:
			// Low surrogate with no preceding high surrogate; a valid
			// pair is always consumed as one unit at the high half.
			return 0, 0, false, &errs.DecodeError{Err: errs.ErrUnpairedSurrogate, Offset: i}
		}

	case c < 0xF8:
		// Raw four-byte sequences never appear in CESU-8 or Modified
		// UTF-8; supplementary code points travel as surrogate pairs.
		return 0, 0, false, &errs.DecodeError{Err: errs.ErrDisallowedCodePoint, Offset: i}

	default:
		return 0, 0, false, &errs.DecodeError{Err: errs.ErrInvalidSequence, Offset: i}
	}
}
