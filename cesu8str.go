// Package cesu8str transcodes text between standard UTF-8 and two
// related variable-width encodings used by non-POSIX platforms: CESU-8
// and the JVM's Modified UTF-8.
//
// Both variants apply UTF-8's byte-encoding rule to each UTF-16 code
// unit independently, so supplementary code points (>= U+10000) travel
// as two three-byte surrogate sequences instead of one four-byte
// sequence. Modified UTF-8 additionally encodes the null code point as
// the two-byte overlong pair 0xC0 0x80, keeping encoded strings free of
// embedded zero bytes for null-terminated contexts.
//
// # Basic Usage
//
// Encoding UTF-8 to a variant and back:
//
//	import (
//	    "github.com/chrismooredev/cesu8str"
//	    "github.com/chrismooredev/cesu8str/format"
//	)
//
//	encoded := cesu8str.Encode([]byte("hi \U0001F600"), format.VariantStandard)
//	decoded, err := cesu8str.Decode(encoded, format.VariantStandard)
//
// Validating untrusted input without producing output:
//
//	if !cesu8str.Valid(data, format.VariantJava) {
//	    // reject
//	}
//
// # Buffer Ownership
//
// When no byte needs rewriting (the dominant case for ASCII/BMP text),
// Encode and Decode return the input slice itself rather than a copy.
// Treat returned buffers as possibly aliasing the input.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the
// encoding package. The encoding package holds the codec core, errs the
// error values, and format the variant selector.
package cesu8str

import (
	"github.com/chrismooredev/cesu8str/encoding"
	"github.com/chrismooredev/cesu8str/format"
)

// Encode converts valid UTF-8 input to the target variant. It never
// fails; invalid UTF-8 input yields unspecified (but memory-safe)
// output. See encoding.Encode for the full contract.
func Encode(src []byte, v format.Variant) []byte {
	return encoding.Encode(src, v)
}

// Decode converts a buffer in the source variant to standard UTF-8,
// failing atomically with a *errs.DecodeError on the first malformed
// unit. See encoding.Decode for the full contract.
func Decode(src []byte, v format.Variant) ([]byte, error) {
	return encoding.Decode(src, v)
}

// Valid reports whether src is well-formed in the given variant.
func Valid(src []byte, v format.Variant) bool {
	return encoding.Valid(src, v)
}

// Check validates src against the given variant and returns the first
// *errs.DecodeError, or nil when src is well-formed.
func Check(src []byte, v format.Variant) error {
	return encoding.Check(src, v)
}

// Compatible reports whether valid UTF-8 input already needs no
// rewriting for the target variant, i.e. whether Encode would return it
// unchanged.
func Compatible(src []byte, v format.Variant) bool {
	return encoding.Compatible(src, v)
}

// RuneCount returns the number of Unicode scalar values encoded in src,
// validating as it scans. A surrogate pair counts once.
func RuneCount(src []byte, v format.Variant) (int, error) {
	return encoding.RuneCount(src, v)
}

// EncodeJava converts valid UTF-8 input to Modified UTF-8.
func EncodeJava(src []byte) []byte {
	return encoding.Encode(src, format.VariantJava)
}

// DecodeJava converts Modified UTF-8 input to standard UTF-8.
func DecodeJava(src []byte) ([]byte, error) {
	return encoding.Decode(src, format.VariantJava)
}
