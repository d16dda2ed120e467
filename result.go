package japhone

import "time"

// Result holds the conversion output with token detail.
type Result struct {
	Text    string        // phoneme string, tokens joined by single spaces
	Tokens  []Token       // token-level details in input order
	Elapsed time.Duration // wall time spent converting
}

// Token holds one word token and its phonemes.
type Token struct {
	Surface  string // token text after furigana expansion
	Phonemes string
}
