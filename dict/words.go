package dict

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/ieee0824/japhone-go/trie"
)

// LoadWordList reads a word-boundary dictionary: one word per line.
// Trailing whitespace is stripped and blank lines are skipped. Every word
// is stored under the empty marker value.
func LoadWordList(r io.Reader) (*trie.Trie, error) {
	t := trie.New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := trimTrailingSpace(scanner.Text())
		if word == "" {
			continue
		}
		t.Insert(word, "")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadWordListFile is a convenience wrapper that opens a file path.
func LoadWordListFile(path string) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	start := time.Now()
	t, err := LoadWordList(f)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d words from %s in %s", t.Len(), path, time.Since(start))
	return t, nil
}

// trimTrailingSpace strips the whitespace a dictionary line may end with.
func trimTrailingSpace(s string) string {
	for len(s) > 0 {
		switch s[len(s)-1] {
		case ' ', '\t', '\r', '\n':
			s = s[:len(s)-1]
		default:
			return s
		}
	}
	return s
}
