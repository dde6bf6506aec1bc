package encoding

// UTF-16 surrogate range boundaries, shared by the encoder and decoder.
const (
	surr1 = 0xD800 // start of high surrogate range
	surr2 = 0xDC00 // start of low surrogate range
	surr3 = 0xE000 // end of low surrogate range (exclusive)

	surrSelf = 0x10000 // first supplementary code point
)

// splitSurrogate decomposes a supplementary code point (>= surrSelf)
// into its UTF-16 high/low surrogate halves.
func splitSurrogate(cp rune) (hi, lo rune) {
	cp -= surrSelf

	return surr1 + cp>>10, surr2 + cp&0x3FF
}

// combineSurrogates reassembles a supplementary code point from a
// high/low surrogate pair. Callers guarantee the halves are in range.
func combineSurrogates(hi, lo rune) rune {
	return surrSelf + (hi-surr1)<<10 + (lo - surr2)
}

// appendSurrogate emits a surrogate value as a standalone three-byte
// sequence, applying the ordinary UTF-8 multi-byte rule to a code point
// UTF-8 itself refuses to encode. This is the defining transformation
// of CESU-8.
func appendSurrogate(dst []byte, s rune) []byte {
	return append(dst,
		0xE0|byte(s>>12),
		0x80|byte(s>>6)&0x3F,
		0x80|byte(s)&0x3F,
	)
}
