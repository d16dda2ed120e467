// Package dict builds lookup tries from dictionary files: line-oriented
// word lists, flat JSON phoneme maps, and the binary trie form shared
// with other runtimes. A small built-in kana table covers callers that
// bring no dictionary of their own.
package dict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'japhone.dict'
func tracer() tracing.Trace {
	return tracing.Select("japhone.dict")
}
