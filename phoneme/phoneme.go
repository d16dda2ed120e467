// Package phoneme converts Japanese text to phoneme strings by greedy
// longest match against a pronunciation trie.
package phoneme

import (
	"github.com/ieee0824/japhone-go/codepoint"
	"github.com/ieee0824/japhone-go/trie"
)

// Converter holds the pronunciation dictionary for token conversion.
type Converter struct {
	dict *trie.Trie
}

// NewConverter returns a Converter over dict. A nil dict passes every
// character through unchanged.
func NewConverter(dict *trie.Trie) *Converter {
	return &Converter{dict: dict}
}

// Convert maps one token to its phoneme string. The dictionary is
// matched greedily from left to right; characters no entry covers are
// copied through verbatim. The topic particle は as a token of its own
// is read wa, whatever the dictionary says for the bare kana.
func (c *Converter) Convert(token string) string {
	if token == "は" {
		return "wa"
	}
	cps, _ := codepoint.DecodeString(token)
	var out []byte
	for i := 0; i < len(cps); {
		if c.dict != nil {
			if n, v, ok := c.dict.LongestMatch(cps, i); ok && n > 0 {
				out = append(out, v...)
				i += n
				continue
			}
		}
		out = codepoint.AppendRune(out, cps[i])
		i++
	}
	return string(out)
}
