// Package trie implements the code-point-keyed prefix tree backing both
// dictionaries of the conversion pipeline: surface forms map to phoneme
// strings, word lists map to empty marker values. A read-only archive
// form with the same lookup surface lives in overlay.go.
package trie

import (
	"sort"

	"github.com/ieee0824/japhone-go/codepoint"
)

// Trie maps sequences of Unicode code points to string values. The zero
// value is not usable; call New. A Trie is safe for concurrent readers
// once no more Insert calls occur.
type Trie struct {
	root *node
	size int
}

type node struct {
	children map[rune]*node
	value    string
	hasValue bool
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: &node{}}
}

// Insert stores value under key, creating intermediate nodes as needed.
// Inserting an existing key overwrites its value. The empty string is a
// legal value; word dictionaries use it as a boundary marker.
func (t *Trie) Insert(key, value string) {
	n := t.root
	for i := 0; i < len(key); {
		var r rune
		r, i = codepoint.Next(key, i)
		child, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = make(map[rune]*node)
			}
			child = &node{}
			n.children[r] = child
		}
		n = child
	}
	if !n.hasValue {
		t.size++
	}
	n.value = value
	n.hasValue = true
}

// Len returns the number of distinct keys.
func (t *Trie) Len() int {
	return t.size
}

// Get returns the value stored under key.
func (t *Trie) Get(key string) (string, bool) {
	n := t.root
	for i := 0; i < len(key); {
		var r rune
		r, i = codepoint.Next(key, i)
		n = n.children[r]
		if n == nil {
			return "", false
		}
	}
	if !n.hasValue {
		return "", false
	}
	return n.value, true
}

// Contains reports whether key was inserted.
func (t *Trie) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// LongestMatch walks cps[start:] and returns the length in code points of
// the longest prefix that ends at a valued node, together with that value.
// ok is false when no prefix of any length carries a value.
func (t *Trie) LongestMatch(cps []rune, start int) (length int, value string, ok bool) {
	n := t.root
	for i := start; i < len(cps); i++ {
		n = n.children[cps[i]]
		if n == nil {
			break
		}
		if n.hasValue {
			length, value, ok = i-start+1, n.value, true
		}
	}
	return length, value, ok
}

// Cursor is a resumable walk through the trie, one code point per Step.
// It exists for callers whose key material is not contiguous, such as the
// furigana compound override that walks a surface form and then continues
// past the bracketed reading.
type Cursor struct {
	n *node
}

// Cursor returns a cursor positioned at the root.
func (t *Trie) Cursor() Cursor {
	return Cursor{n: t.root}
}

// Step advances the cursor along the edge labeled r. Once Step returns
// false the cursor stays dead.
func (c *Cursor) Step(r rune) bool {
	if c.n == nil {
		return false
	}
	c.n = c.n.children[r]
	return c.n != nil
}

// Value returns the value at the current node, if any.
func (c *Cursor) Value() (string, bool) {
	if c.n == nil || !c.n.hasValue {
		return "", false
	}
	return c.n.value, true
}

// Each visits every stored pair in depth-first, ascending code-point
// order. The key slice is reused between calls; copy it to retain it.
// Returning false from fn stops the walk.
func (t *Trie) Each(fn func(key []rune, value string) bool) {
	t.root.each(nil, fn)
}

func (n *node) each(prefix []rune, fn func([]rune, string) bool) bool {
	if n.hasValue {
		if !fn(prefix, n.value) {
			return false
		}
	}
	for _, r := range n.sortedKeys() {
		if !n.children[r].each(append(prefix, r), fn) {
			return false
		}
	}
	return true
}

func (n *node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
