package japhone

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ieee0824/japhone-go/dict"
	"github.com/ieee0824/japhone-go/phoneme"
	"github.com/ieee0824/japhone-go/segment"
	"github.com/ieee0824/japhone-go/trie"
)

// Version is the library version.
const Version = "2.0.0"

// Phonemizer is the top-level text-to-phoneme converter.
type Phonemizer struct {
	phonemes *trie.Trie
	words    *trie.Trie
	conv     *phoneme.Converter
	seg      *segment.Segmenter
	segOn    atomic.Bool

	wordListPath string // set by WithWordList, loaded during New
	wordListData []byte // set by WithWordListData, loaded during New
}

// Option configures a Phonemizer.
type Option func(*Phonemizer)

// WithWordList loads a word-boundary list from a text file, one word
// per line.
func WithWordList(path string) Option {
	return func(p *Phonemizer) {
		p.wordListPath = path
	}
}

// WithWordListData loads a word-boundary list from memory.
func WithWordListData(data []byte) Option {
	return func(p *Phonemizer) {
		p.wordListData = data
	}
}

// WithWordTrie uses a pre-built word-boundary trie. The trie must not
// be mutated afterwards.
func WithWordTrie(t *trie.Trie) Option {
	return func(p *Phonemizer) {
		p.words = t
	}
}

// WithSegmentation enables or disables word segmentation. It is on by
// default; disabled, the whole input is converted as one token.
func WithSegmentation(enabled bool) Option {
	return func(p *Phonemizer) {
		p.segOn.Store(enabled)
	}
}

// New creates a Phonemizer from a phoneme dictionary file. The file
// may be JSON, a packed binary dictionary, or a trie archive; the
// format is sniffed from the content. When a precompiled archive sits
// next to the dictionary as path+".trie" it is preferred.
func New(dictPath string, opts ...Option) (*Phonemizer, error) {
	p := &Phonemizer{}
	p.segOn.Store(true)
	for _, opt := range opts {
		opt(p)
	}

	start := time.Now()
	t, err := loadDictionary(dictPath)
	if err != nil {
		return nil, fmt.Errorf("load phoneme dictionary: %w", err)
	}
	p.phonemes = t
	tracer().Infof("loaded %d phoneme entries from %s in %s", t.Len(), dictPath, time.Since(start))

	if err := p.finish(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewFromBytes creates a Phonemizer from an in-memory dictionary in
// any of the formats New accepts.
func NewFromBytes(dictData []byte, opts ...Option) (*Phonemizer, error) {
	if dictData == nil {
		return nil, ErrNilArgument
	}
	p := &Phonemizer{}
	p.segOn.Store(true)
	for _, opt := range opts {
		opt(p)
	}

	t, err := trieFromBytes(dictData)
	if err != nil {
		return nil, fmt.Errorf("load phoneme dictionary: %w", err)
	}
	p.phonemes = t

	if err := p.finish(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewFromTries creates a Phonemizer from pre-built tries. Either trie
// may be nil; a nil phoneme trie passes text through unchanged.
func NewFromTries(phonemes, words *trie.Trie, opts ...Option) *Phonemizer {
	p := &Phonemizer{phonemes: phonemes, words: words}
	p.segOn.Store(true)
	for _, opt := range opts {
		opt(p)
	}
	p.conv = phoneme.NewConverter(p.phonemes)
	p.seg = segment.NewSegmenter(p.words, p.phonemes)
	return p
}

// finish resolves pending word-list options and builds the pipeline.
func (p *Phonemizer) finish() error {
	switch {
	case p.words != nil:
	case p.wordListPath != "":
		t, err := dict.LoadWordListFile(p.wordListPath)
		if err != nil {
			return fmt.Errorf("load word list: %w", err)
		}
		p.words = t
	case p.wordListData != nil:
		t, err := dict.LoadWordList(bytes.NewReader(p.wordListData))
		if err != nil {
			return fmt.Errorf("load word list: %w", err)
		}
		p.words = t
	}
	p.wordListPath, p.wordListData = "", nil
	p.conv = phoneme.NewConverter(p.phonemes)
	p.seg = segment.NewSegmenter(p.words, p.phonemes)
	return nil
}

// loadDictionary reads a dictionary file, preferring a precompiled
// sibling archive when one exists.
func loadDictionary(path string) (*trie.Trie, error) {
	if !strings.HasSuffix(path, ".trie") {
		if sib := path + ".trie"; fileExists(sib) {
			if t, err := loadArchiveFile(sib); err == nil {
				tracer().Infof("using precompiled archive %s", sib)
				return t, nil
			} else {
				tracer().Errorf("ignoring unreadable archive %s: %v", sib, err)
			}
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return trieFromBytes(data)
}

func loadArchiveFile(path string) (*trie.Trie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ov, err := trie.OpenOverlay(data)
	if err != nil {
		return nil, err
	}
	return ov.Trie(), nil
}

// trieFromBytes sniffs the dictionary format from its leading magic.
func trieFromBytes(data []byte) (*trie.Trie, error) {
	switch {
	case bytes.HasPrefix(data, []byte(trie.ArchiveMagic)):
		ov, err := trie.OpenOverlay(data)
		if err != nil {
			return nil, err
		}
		return ov.Trie(), nil
	case bytes.HasPrefix(data, []byte(dict.BinaryMagic)):
		return dict.ReadTrie(bytes.NewReader(data))
	default:
		return dict.LoadPhonemeMap(bytes.NewReader(data))
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Convert maps text to its phoneme string, tokens joined by single
// spaces.
func (p *Phonemizer) Convert(text string) (string, error) {
	if p == nil || p.conv == nil {
		return "", ErrNotInitialized
	}
	return p.convert(text), nil
}

// ConvertTo converts text into a caller-supplied buffer and returns
// the number of bytes written. When the buffer is too short nothing is
// written and the error reports the required size.
func (p *Phonemizer) ConvertTo(text string, buf []byte) (int, error) {
	if p == nil || p.conv == nil {
		return 0, ErrNotInitialized
	}
	out := p.convert(text)
	if len(buf) < len(out) {
		return 0, &BufferTooSmallError{Required: len(out)}
	}
	return copy(buf, out), nil
}

// ConvertDetailed converts text and reports per-token phonemes and
// timing alongside the joined result.
func (p *Phonemizer) ConvertDetailed(text string) (*Result, error) {
	if p == nil || p.conv == nil {
		return nil, ErrNotInitialized
	}
	start := time.Now()
	toks := p.tokens(text)
	res := &Result{Tokens: make([]Token, 0, len(toks))}
	phs := make([]string, 0, len(toks))
	for _, tok := range toks {
		ph := p.conv.Convert(tok)
		res.Tokens = append(res.Tokens, Token{Surface: tok, Phonemes: ph})
		phs = append(phs, ph)
	}
	res.Text = strings.Join(phs, " ")
	res.Elapsed = time.Since(start)
	return res, nil
}

func (p *Phonemizer) convert(text string) string {
	toks := p.tokens(text)
	phs := make([]string, 0, len(toks))
	for _, tok := range toks {
		phs = append(phs, p.conv.Convert(tok))
	}
	return strings.Join(phs, " ")
}

// tokens runs the furigana and segmentation passes.
func (p *Phonemizer) tokens(text string) []string {
	segs := segment.ParseFurigana(text, p.words)
	if p.segOn.Load() {
		return p.seg.Tokens(segs)
	}
	// 分割なし: ヒント展開後の全文をひとつのトークンに
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Effective())
	}
	if b.Len() == 0 {
		return nil
	}
	return []string{b.String()}
}

// SetSegmentation switches word segmentation on or off. Safe to call
// while conversions are running.
func (p *Phonemizer) SetSegmentation(enabled bool) {
	p.segOn.Store(enabled)
}

// Segmentation reports whether word segmentation is enabled.
func (p *Phonemizer) Segmentation() bool {
	return p.segOn.Load()
}

// EntryCount returns the number of phoneme dictionary entries.
func (p *Phonemizer) EntryCount() int {
	if p == nil || p.phonemes == nil {
		return 0
	}
	return p.phonemes.Len()
}

// WordCount returns the number of word-boundary entries.
func (p *Phonemizer) WordCount() int {
	if p == nil || p.words == nil {
		return 0
	}
	return p.words.Len()
}
