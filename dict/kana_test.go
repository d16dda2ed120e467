package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKanaLookup(t *testing.T) {
	tr := Kana()
	tests := []struct {
		kana string
		want string
	}{
		// 基本母音
		{"あ", "a"},
		{"う", "ɯ"},
		// 拗音 (2文字)
		{"きゃ", "kʲa"},
		{"ちょ", "tɕo"},
		{"シュ", "ɕɯ"},
		// 特殊
		{"ん", "ɴ"},
		{"ッ", "ʔ"},
		{"ー", "ː"},
		// 外来語音
		{"ファ", "ɸa"},
		{"ヴィ", "vi"},
	}
	for _, tt := range tests {
		v, ok := tr.Get(tt.kana)
		require.True(t, ok, "missing %q", tt.kana)
		assert.Equal(t, tt.want, v, "value for %q", tt.kana)
	}
}

func TestKanaScriptParity(t *testing.T) {
	tr := Kana()
	pairs := [][2]string{
		{"し", "シ"},
		{"こ", "コ"},
		{"りゅ", "リュ"},
		{"ん", "ン"},
	}
	for _, p := range pairs {
		h, ok := tr.Get(p[0])
		require.True(t, ok)
		k, ok := tr.Get(p[1])
		require.True(t, ok)
		assert.Equal(t, h, k, "%q and %q should share a pronunciation", p[0], p[1])
	}
}

func TestKanaLongestMatchPrefersDigraph(t *testing.T) {
	tr := Kana()
	length, v, ok := tr.LongestMatch([]rune("きゃく"), 0)
	require.True(t, ok)
	assert.Equal(t, 2, length)
	assert.Equal(t, "kʲa", v)
}

func TestKanaReturnsFreshTrie(t *testing.T) {
	a := Kana()
	a.Insert("こんにちは", "koɴnitɕiwa")
	b := Kana()
	assert.False(t, b.Contains("こんにちは"))
}
