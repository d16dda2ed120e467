package segment

import (
	"github.com/ieee0824/japhone-go/codepoint"
	"github.com/ieee0824/japhone-go/internal/runeclass"
	"github.com/ieee0824/japhone-go/trie"
)

// Segmenter cuts text into word tokens. Known words come from the word
// trie by greedy longest match; surfaces the word trie does not know
// fall back to the phoneme trie, and anything neither trie matches is
// coalesced into a single run up to the next known word or whitespace.
type Segmenter struct {
	words    *trie.Trie
	phonemes *trie.Trie
}

// NewSegmenter returns a Segmenter over the given tries. Either trie
// may be nil, which disables the corresponding lookup.
func NewSegmenter(words, phonemes *trie.Trie) *Segmenter {
	return &Segmenter{words: words, phonemes: phonemes}
}

// Tokens flattens furigana segments into word tokens. A hint segment
// contributes its reading as one indivisible token; plain segments are
// split by dictionary match.
func (s *Segmenter) Tokens(segs []Segment) []string {
	var tokens []string
	for _, seg := range segs {
		if seg.IsHint() {
			tokens = append(tokens, seg.Reading)
			continue
		}
		tokens = s.splitPlain(seg.Text, tokens)
	}
	return tokens
}

// Split parses furigana hints in text and returns its word tokens.
func (s *Segmenter) Split(text string) []string {
	return s.Tokens(ParseFurigana(text, s.words))
}

func (s *Segmenter) splitPlain(text string, tokens []string) []string {
	cps, _ := codepoint.DecodeString(text)
	for i := 0; i < len(cps); {
		if runeclass.IsASCIISpace(cps[i]) {
			i++
			continue
		}
		m := 0
		if s.words != nil {
			m, _, _ = s.words.LongestMatch(cps, i)
		}
		if m == 0 && s.phonemes != nil {
			m, _, _ = s.phonemes.LongestMatch(cps, i)
		}
		if m > 0 {
			tokens = append(tokens, string(cps[i:i+m]))
			i += m
			continue
		}
		// 未知語: 次の辞書語か空白の手前までをひとまとまりに
		j := i + 1
		for j < len(cps) {
			if runeclass.IsASCIISpace(cps[j]) {
				break
			}
			if s.words != nil {
				if l, _, _ := s.words.LongestMatch(cps, j); l > 0 {
					break
				}
			}
			j++
		}
		tokens = append(tokens, string(cps[i:j]))
		i = j
	}
	return tokens
}
