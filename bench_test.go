package japhone

import (
	"strings"
	"testing"

	"github.com/ieee0824/japhone-go/dict"
	"github.com/ieee0824/japhone-go/trie"
)

func benchPhonemizer() *Phonemizer {
	ph := dict.Kana()
	ph.Insert("私", "wataɕi")
	ph.Insert("リンゴ", "ɾiɴgo")
	ph.Insert("すき", "sɯki")
	ph.Insert("です", "desɯ")
	words := trie.New()
	for _, w := range []string{"私", "リンゴ", "すき", "見て"} {
		words.Insert(w, "")
	}
	return NewFromTries(ph, words)
}

func BenchmarkConvert_Sentence(b *testing.B) {
	p := benchPhonemizer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Convert("私はリンゴがすきです")
	}
}

func BenchmarkConvert_NoSegmentation(b *testing.B) {
	p := benchPhonemizer()
	p.SetSegmentation(false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Convert("私はリンゴがすきです")
	}
}

func BenchmarkConvert_FuriganaHints(b *testing.B) {
	p := benchPhonemizer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Convert("健太「けんた」は昼ご飯「ひるごはん」を見「み」てた")
	}
}

func BenchmarkConvert_LongText(b *testing.B) {
	p := benchPhonemizer()
	text := strings.Repeat("私はリンゴがすきです。", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Convert(text)
	}
}
