package japhone

import (
	"sync"

	"github.com/ieee0824/japhone-go/dict"
)

// The package-level API drives one process-wide Phonemizer. Conversions
// take the read side of the lock, so they run concurrently; Init and
// Cleanup take the write side and wait for in-flight conversions to
// drain before swapping the instance.
var (
	mu  sync.RWMutex
	def *Phonemizer

	errMu   sync.Mutex
	lastErr error
)

func recordErr(err error) error {
	errMu.Lock()
	lastErr = err
	errMu.Unlock()
	return err
}

// Init loads the phoneme dictionary and optional word list (empty path
// to skip) into the process-wide phonemizer. A previous instance stays
// in place when loading fails.
func Init(dictPath, wordListPath string) error {
	var opts []Option
	if wordListPath != "" {
		opts = append(opts, WithWordList(wordListPath))
	}
	p, err := New(dictPath, opts...)
	if err != nil {
		return recordErr(err)
	}
	mu.Lock()
	def = p
	mu.Unlock()
	return recordErr(nil)
}

// InitFromBytes is Init for in-memory dictionaries. wordListData may be
// nil.
func InitFromBytes(dictData, wordListData []byte) error {
	var opts []Option
	if wordListData != nil {
		opts = append(opts, WithWordListData(wordListData))
	}
	p, err := NewFromBytes(dictData, opts...)
	if err != nil {
		return recordErr(err)
	}
	mu.Lock()
	def = p
	mu.Unlock()
	return recordErr(nil)
}

// InitWordList loads a word list into the already initialized
// process-wide phonemizer, replacing any previous one.
func InitWordList(path string) error {
	t, err := dict.LoadWordListFile(path)
	if err != nil {
		return recordErr(err)
	}
	mu.Lock()
	defer mu.Unlock()
	if def == nil {
		return recordErr(ErrNotInitialized)
	}
	p := NewFromTries(def.phonemes, t)
	p.segOn.Store(def.segOn.Load())
	def = p
	return recordErr(nil)
}

// Initialized reports whether the process-wide phonemizer is ready.
func Initialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return def != nil
}

// Convert maps text to phonemes with the process-wide phonemizer.
func Convert(text string) (string, error) {
	mu.RLock()
	defer mu.RUnlock()
	if def == nil {
		return "", recordErr(ErrNotInitialized)
	}
	out, err := def.Convert(text)
	return out, recordErr(err)
}

// ConvertTo converts text into a caller-supplied buffer with the
// process-wide phonemizer.
func ConvertTo(text string, buf []byte) (int, error) {
	mu.RLock()
	defer mu.RUnlock()
	if def == nil {
		return 0, recordErr(ErrNotInitialized)
	}
	n, err := def.ConvertTo(text, buf)
	return n, recordErr(err)
}

// ConvertDetailed converts text and reports token detail and timing
// with the process-wide phonemizer.
func ConvertDetailed(text string) (*Result, error) {
	mu.RLock()
	defer mu.RUnlock()
	if def == nil {
		return nil, recordErr(ErrNotInitialized)
	}
	res, err := def.ConvertDetailed(text)
	return res, recordErr(err)
}

// SetSegmentation switches word segmentation on the process-wide
// phonemizer.
func SetSegmentation(enabled bool) error {
	mu.RLock()
	defer mu.RUnlock()
	if def == nil {
		return recordErr(ErrNotInitialized)
	}
	def.SetSegmentation(enabled)
	return recordErr(nil)
}

// Segmentation reports whether word segmentation is enabled on the
// process-wide phonemizer.
func Segmentation() bool {
	mu.RLock()
	defer mu.RUnlock()
	return def != nil && def.Segmentation()
}

// EntryCount returns the phoneme entry count of the process-wide
// phonemizer, 0 when uninitialized.
func EntryCount() int {
	mu.RLock()
	defer mu.RUnlock()
	return def.EntryCount()
}

// WordCount returns the word-boundary entry count of the process-wide
// phonemizer, 0 when uninitialized.
func WordCount() int {
	mu.RLock()
	defer mu.RUnlock()
	return def.WordCount()
}

// LastError returns the error recorded by the most recent package-level
// operation, nil after a success.
func LastError() error {
	errMu.Lock()
	defer errMu.Unlock()
	return lastErr
}

// Cleanup releases the process-wide phonemizer. It waits for in-flight
// conversions to finish; afterwards conversions fail with
// ErrNotInitialized until the next Init.
func Cleanup() {
	mu.Lock()
	def = nil
	mu.Unlock()
	recordErr(nil)
}
