package runeclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKana(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		// ひらがな
		{'あ', true},
		{'ん', true},
		{'ゃ', true},
		{'を', true},
		// カタカナ
		{'ア', true},
		{'ン', true},
		{'ー', true},
		// 漢字と記号は対象外
		{'漢', false},
		{'「', false},
		{'」', false},
		{'a', false},
		{' ', false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsKana(tt.r), "IsKana(%q)", tt.r)
	}
}

func TestIsKanji(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'漢', true},
		{'男', true},
		{'飯', true},
		{rune(0x3400), true}, // 拡張A先頭
		{'あ', false},
		{'ア', false},
		{'「', false},
		{'z', false},
		// U+4E00以上は全て漢字扱い(全角英数を含む)
		{'Ａ', true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsKanji(tt.r), "IsKanji(%q)", tt.r)
	}
}

func TestIsJapaneseStop(t *testing.T) {
	for _, r := range "、。！？）］" {
		assert.True(t, IsJapaneseStop(r), "IsJapaneseStop(%q)", r)
	}
	// 鉤括弧は別扱い
	for _, r := range "「」あ漢a." {
		assert.False(t, IsJapaneseStop(r), "IsJapaneseStop(%q)", r)
	}
}

func TestIsASCIIPunct(t *testing.T) {
	for _, r := range `.,!?;:()[]{}"'-/\|` {
		assert.True(t, IsASCIIPunct(r), "IsASCIIPunct(%q)", r)
	}
	for _, r := range "a0 あ、" {
		assert.False(t, IsASCIIPunct(r), "IsASCIIPunct(%q)", r)
	}
}

func TestIsASCIISpace(t *testing.T) {
	for _, r := range " \t\n\r" {
		assert.True(t, IsASCIISpace(r), "IsASCIISpace(%q)", r)
	}
	for _, r := range "a　" { // 全角スペースは含めない
		assert.False(t, IsASCIISpace(r), "IsASCIISpace(%q)", r)
	}
}
