// Package codepoint decodes UTF-8 byte streams into Unicode code points
// while remembering byte boundaries. The decoder is deliberately permissive:
// a malformed or truncated sequence is passed through as a pseudo-scalar
// equal to the offending byte value with a one-byte advance, so conversion
// can preserve arbitrary input byte-for-byte instead of rejecting it.
package codepoint

// seqLen returns the byte length implied by a UTF-8 lead byte, or 0 when
// the byte cannot start a sequence.
func seqLen(c byte) int {
	switch {
	case c < 0x80:
		return 1
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// Decode converts b into code points together with the byte offset where
// each began. The offsets slice is one longer than the code point slice;
// the final element is len(b). Decode never fails: malformed lead bytes
// become pseudo-scalars with a one-byte advance.
func Decode(b []byte) ([]rune, []int) {
	cps := make([]rune, 0, len(b))
	offsets := make([]int, 0, len(b)+1)
	for i := 0; i < len(b); {
		offsets = append(offsets, i)
		c := b[i]
		n := seqLen(c)
		if n == 0 || i+n > len(b) {
			cps = append(cps, rune(c))
			i++
			continue
		}
		switch n {
		case 1:
			cps = append(cps, rune(c))
		case 2:
			cps = append(cps, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
		case 3:
			cps = append(cps, rune(c&0x0F)<<12|rune(b[i+1]&0x3F)<<6|rune(b[i+2]&0x3F))
		case 4:
			cps = append(cps, rune(c&0x07)<<18|rune(b[i+1]&0x3F)<<12|rune(b[i+2]&0x3F)<<6|rune(b[i+3]&0x3F))
		}
		i += n
	}
	offsets = append(offsets, len(b))
	return cps, offsets
}

// DecodeString is Decode for a string input.
func DecodeString(s string) ([]rune, []int) {
	return Decode([]byte(s))
}

// Next decodes the single code point starting at byte index i of s and
// returns it with the index of the following one. Callers iterate a string
// without building the intermediate slices of Decode.
func Next(s string, i int) (rune, int) {
	c := s[i]
	n := seqLen(c)
	if n == 0 || i+n > len(s) {
		return rune(c), i + 1
	}
	switch n {
	case 2:
		return rune(c&0x1F)<<6 | rune(s[i+1]&0x3F), i + 2
	case 3:
		return rune(c&0x0F)<<12 | rune(s[i+1]&0x3F)<<6 | rune(s[i+2]&0x3F), i + 3
	case 4:
		return rune(c&0x07)<<18 | rune(s[i+1]&0x3F)<<12 | rune(s[i+2]&0x3F)<<6 | rune(s[i+3]&0x3F), i + 4
	}
	return rune(c), i + 1
}

// AppendRune appends the UTF-8 encoding of r to dst. Encoding is by bit
// pattern alone, mirroring Decode: pseudo-scalars and surrogate values
// are written out rather than replaced.
func AppendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
	case r < 0x10000:
		return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
	}
	return append(dst, 0xF0|byte(r>>18), 0x80|byte(r>>12&0x3F), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
}
