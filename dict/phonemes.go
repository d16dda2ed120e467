package dict

import (
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/ieee0824/japhone-go/trie"
)

// LoadPhonemeMap reads a phoneme dictionary: a flat JSON object whose
// keys are Japanese surface forms and whose values are phoneme strings.
// Pairs stream straight into the trie; the object is never materialized
// as a map, so dictionaries with hundreds of thousands of entries load
// without a second copy in memory.
func LoadPhonemeMap(r io.Reader) (*trie.Trie, error) {
	iter := jsoniter.Parse(jsoniter.ConfigDefault, r, 64*1024)
	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		return nil, fmt.Errorf("phoneme map: top-level JSON object expected, found %v", next)
	}
	t := trie.New()
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		t.Insert(key, it.ReadString())
		return it.Error == nil
	})
	if err := iter.Error; err != nil && err != io.EOF {
		return nil, fmt.Errorf("phoneme map: %w", err)
	}
	return t, nil
}

// LoadPhonemeMapFile is a convenience wrapper that opens a file path.
func LoadPhonemeMapFile(path string) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	start := time.Now()
	t, err := LoadPhonemeMap(f)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d phoneme entries from %s in %s", t.Len(), path, time.Since(start))
	return t, nil
}
