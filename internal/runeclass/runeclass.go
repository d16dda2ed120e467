package runeclass

// IsKana reports whether r is hiragana (U+3040..U+309F) or katakana
// (U+30A0..U+30FF).
func IsKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF)
}

// IsKanji reports whether r is a CJK unified ideograph. The check is
// deliberately broad: everything at or above U+4E00 counts, plus the
// extension A block U+3400..U+9FFF below it.
func IsKanji(r rune) bool {
	return r >= 0x4E00 || (r >= 0x3400 && r <= 0x9FFF)
}

// IsJapaneseStop reports whether r is a Japanese clause or quote boundary
// that a reading hint never reaches across: 、 。 ！ ？ ） ］.
func IsJapaneseStop(r rune) bool {
	switch r {
	case 0x3001, 0x3002, 0xFF01, 0xFF1F, 0xFF09, 0xFF3D:
		return true
	}
	return false
}

// IsASCIIPunct reports whether r is ASCII punctuation that bounds a word.
func IsASCIIPunct(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '(', ')', '[', ']', '{', '}',
		'"', '\'', '-', '/', '\\', '|':
		return true
	}
	return false
}

// IsASCIISpace reports whether r is an ASCII whitespace character.
func IsASCIISpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
