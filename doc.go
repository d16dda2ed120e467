// Package japhone converts Japanese text into IPA-style phoneme
// strings. Text is scanned for inline 「reading」 furigana hints, cut
// into word tokens against a word-boundary trie, and each token is
// mapped to phonemes by greedy longest match against a pronunciation
// dictionary.
//
// A Phonemizer is safe for concurrent use once built: its tries are
// never mutated after loading and the segmentation switch is atomic.
// The package-level functions mirror the same pipeline on a single
// process-wide instance guarded by a read-write lock.
package japhone

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'japhone'
func tracer() tracing.Trace {
	return tracing.Select("japhone")
}
