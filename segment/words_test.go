package segment

import (
	"testing"

	"github.com/ieee0824/japhone-go/trie"
	"github.com/stretchr/testify/assert"
)

func phonemeTrie(entries map[string]string) *trie.Trie {
	t := trie.New()
	for k, v := range entries {
		t.Insert(k, v)
	}
	return t
}

func TestTokens(t *testing.T) {
	words := wordTrie("私", "リンゴ", "すき")
	phonemes := phonemeTrie(map[string]string{
		"は":   "ha",
		"が":   "ga",
		"です":  "desɯ",
		"バカ":  "baka",
		"すき":  "sɯki",
		"リンゴ": "ɾiɴgo",
	})
	s := NewSegmenter(words, phonemes)

	tests := []struct {
		name string
		segs []Segment
		want []string
	}{
		{"sentence", []Segment{{Text: "私はリンゴがすきです"}},
			[]string{"私", "は", "リンゴ", "が", "すき", "です"}},
		{"hint is atomic", []Segment{
			{Text: "健太", Reading: "けんた"},
			{Text: "はバカ"},
		}, []string{"けんた", "は", "バカ"}},
		{"empty plain contributes nothing", []Segment{{Text: ""}}, nil},
		{"no segments", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Tokens(tt.segs))
		})
	}
}

func TestSplitPlain(t *testing.T) {
	tests := []struct {
		name     string
		words    *trie.Trie
		phonemes *trie.Trie
		in       string
		want     []string
	}{
		// 貪欲最長一致
		{"longest word wins", wordTrie("この", "このひと"), nil,
			"このひとが", []string{"このひと", "が"}},
		// 単語辞書が一致したら音素辞書は見ない
		{"word match blocks fallback", wordTrie("は"),
			phonemeTrie(map[string]string{"はし": "haɕi"}),
			"はし", []string{"は", "し"}},
		// 未知語はまとめてひとつのトークン
		{"unknown run until next word", wordTrie("と"), nil,
			"健太と太郎", []string{"健太", "と", "太郎"}},
		{"unknown run until whitespace", nil, nil,
			"abc def", []string{"abc", "def"}},
		{"unknown run to end", nil, nil,
			"健太", []string{"健太"}},
		// 空白はトークンにならない
		{"spaces are skipped", wordTrie("私", "は"), nil,
			" 私 は ", []string{"私", "は"}},
		{"whitespace only", nil, nil, " \t ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSegmenter(tt.words, tt.phonemes)
			assert.Equal(t, tt.want, s.Tokens([]Segment{{Text: tt.in}}))
		})
	}
}

func TestSplitParsesFurigana(t *testing.T) {
	words := wordTrie("見て")
	s := NewSegmenter(words, nil)

	// 複合語の上書きを経てから分割される
	assert.Equal(t, []string{"みて"}, s.Split("見「み」て"))

	// 通常のヒントは読みがそのままトークンになる
	assert.Equal(t, []string{"おとこ"}, s.Split("男「おとこ」"))
}
