// Package encoding implements the CESU-8 and Modified UTF-8 codec core.
//
// The package converts complete byte buffers between standard UTF-8 and
// the two UTF-16-derived variants: supplementary code points (>= U+10000)
// travel as two three-byte surrogate sequences instead of one four-byte
// sequence, and Modified UTF-8 additionally escapes the null code point
// as the overlong pair 0xC0 0x80.
//
// # Buffer Ownership
//
// Every operation is a pure function over a caller-supplied buffer; the
// package retains no state between calls. When no byte needs rewriting,
// Encode and Decode return the input slice itself rather than a copy.
// Callers must therefore treat returned buffers as possibly aliasing the
// input and must not assume a fresh allocation.
//
// # Error Reporting
//
// Decode, Check, and RuneCount fail atomically on the first malformed
// unit, scanning left to right, and report it as a *errs.DecodeError
// carrying the offset of the unit's first byte in the original input.
//
// For the high-level wrappers, see: github.com/chrismooredev/cesu8str
package encoding
