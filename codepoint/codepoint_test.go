package codepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		cps     []rune
		offsets []int
	}{
		{
			name:    "ASCII",
			in:      []byte("abc"),
			cps:     []rune{'a', 'b', 'c'},
			offsets: []int{0, 1, 2, 3},
		},
		{
			name:    "ひらがな3バイト",
			in:      []byte("こんにちは"),
			cps:     []rune{'こ', 'ん', 'に', 'ち', 'は'},
			offsets: []int{0, 3, 6, 9, 12, 15},
		},
		{
			name:    "混在(1/3/4バイト)",
			in:      []byte("a漢\U0001F600"),
			cps:     []rune{'a', '漢', 0x1F600},
			offsets: []int{0, 1, 4, 8},
		},
		{
			name:    "空入力",
			in:      nil,
			cps:     []rune{},
			offsets: []int{0},
		},
		{
			name:    "不正な先頭バイトは擬似スカラー",
			in:      []byte{0x80, 'a', 0xFF},
			cps:     []rune{0x80, 'a', 0xFF},
			offsets: []int{0, 1, 2, 3},
		},
		{
			name:    "末尾で切れた3バイト列",
			in:      []byte{'a', 0xE3},
			cps:     []rune{'a', 0xE3},
			offsets: []int{0, 1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cps, offsets := Decode(tt.in)
			assert.Equal(t, tt.cps, cps)
			assert.Equal(t, tt.offsets, offsets)
			require.Len(t, offsets, len(cps)+1)
		})
	}
}

func TestNextMatchesDecode(t *testing.T) {
	s := "外国人参政権a😀ー"
	want, _ := DecodeString(s)
	var got []rune
	for i := 0; i < len(s); {
		var r rune
		r, i = Next(s, i)
		got = append(got, r)
	}
	assert.Equal(t, want, got)
}

func TestAppendRuneRoundTrip(t *testing.T) {
	in := []byte("a¢あ漢\U0001F600")
	cps, _ := Decode(in)
	var out []byte
	for _, r := range cps {
		out = AppendRune(out, r)
	}
	assert.Equal(t, in, out)
}

func TestAppendRuneSurrogatePattern(t *testing.T) {
	// CESU風の3バイト列はサロゲート値のまま復号し、そのまま再符号化できる
	in := []byte{0xED, 0xA0, 0x80}
	cps, _ := Decode(in)
	require.Equal(t, []rune{0xD800}, cps)
	assert.Equal(t, in, AppendRune(nil, cps[0]))
}

func TestAppendRunePseudoScalar(t *testing.T) {
	// 擬似スカラーは値として再符号化される(元の1バイトには戻らない)
	cps, _ := Decode([]byte{0xFF})
	require.Equal(t, []rune{0xFF}, cps)
	assert.Equal(t, []byte{0xC3, 0xBF}, AppendRune(nil, cps[0]))
}
