// Package segment turns raw Japanese text into word tokens in two
// passes: inline furigana reading hints are parsed into typed segments,
// then segments are cut into tokens by greedy longest match against a
// word-boundary trie.
package segment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'japhone.segment'
func tracer() tracing.Trace {
	return tracing.Select("japhone.segment")
}
