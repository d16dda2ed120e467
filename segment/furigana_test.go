package segment

import (
	"testing"

	"github.com/ieee0824/japhone-go/trie"
	"github.com/stretchr/testify/assert"
)

func wordTrie(words ...string) *trie.Trie {
	t := trie.New()
	for _, w := range words {
		t.Insert(w, "")
	}
	return t
}

func TestParseFurigana(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		words *trie.Trie
		want  []Segment
	}{
		// ヒントなし
		{"plain only", "こんにちは", nil, []Segment{
			{Text: "こんにちは"},
		}},
		{"empty input", "", nil, nil},

		// 基本のヒント
		{"hint then plain", "健太「けんた」はバカ", nil, []Segment{
			{Text: "健太", Reading: "けんた"},
			{Text: "はバカ"},
		}},
		{"plain then hint", "その男「おとこ」", nil, []Segment{
			{Text: "その"},
			{Text: "男", Reading: "おとこ"},
		}},
		{"okurigana joins surface", "昼ご飯「ひるごはん」", nil, []Segment{
			{Text: "昼ご飯", Reading: "ひるごはん"},
		}},
		{"trailing kana before bracket", "食べ「たべ」た", nil, []Segment{
			{Text: "食べ", Reading: "たべ"},
			{Text: "た"},
		}},
		{"two hints", "健太「けんた」と昼ご飯「ひるごはん」を", nil, []Segment{
			{Text: "健太", Reading: "けんた"},
			{Text: "と"},
			{Text: "昼ご飯", Reading: "ひるごはん"},
			{Text: "を"},
		}},

		// 表層の境界
		{"stops at japanese stop", "今日。男「おとこ」", nil, []Segment{
			{Text: "今日。"},
			{Text: "男", Reading: "おとこ"},
		}},
		{"stops at stray close bracket", "あ」男「おとこ」", nil, []Segment{
			{Text: "あ」"},
			{Text: "男", Reading: "おとこ"},
		}},
		{"stops at ascii space", "aa 男「おとこ」", nil, []Segment{
			{Text: "aa "},
			{Text: "男", Reading: "おとこ"},
		}},

		// 捨てられるヒント
		{"no surface at start", "「よみ」あと", nil, []Segment{
			{Text: "あと"},
		}},
		{"kana only before bracket", "その「よみ」", nil, []Segment{
			{Text: "その"},
		}},
		{"empty reading", "男「 」です", nil, []Segment{
			{Text: "男"},
			{Text: "です"},
		}},
		{"unclosed bracket stays plain", "健太「けんた", nil, []Segment{
			{Text: "健太「けんた"},
		}},

		// 読みの空白除去
		{"reading is trimmed", "男「 おとこ 」", nil, []Segment{
			{Text: "男", Reading: "おとこ"},
		}},

		// 複合語の上書き
		{"compound override", "見「み」て", wordTrie("見て"), []Segment{
			{Text: "みて"},
		}},
		{"compound override with tail", "見「み」てから", wordTrie("見て"), []Segment{
			{Text: "みて"},
			{Text: "から"},
		}},
		{"compound prefers longest", "見「み」てたら", wordTrie("見て", "見てた"), []Segment{
			{Text: "みてた"},
			{Text: "ら"},
		}},
		{"no compound when suffix unknown", "見「み」る", wordTrie("見て"), []Segment{
			{Text: "見", Reading: "み"},
			{Text: "る"},
		}},
		{"no compound without continuation", "見「み」", wordTrie("見て"), []Segment{
			{Text: "見", Reading: "み"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFurigana(tt.in, tt.words))
		})
	}
}

func TestParseFuriganaRebuildsInput(t *testing.T) {
	// 捨てられるヒントや複合語がなければ入力は復元できる
	inputs := []string{
		"健太「けんた」はバカ",
		"その男「おとこ」",
		"昼ご飯「ひるごはん」を食べる",
		"こんにちは",
	}
	for _, in := range inputs {
		var rebuilt string
		for _, seg := range ParseFurigana(in, nil) {
			rebuilt += seg.Text
			if seg.IsHint() {
				rebuilt += "「" + seg.Reading + "」"
			}
		}
		assert.Equal(t, in, rebuilt)
	}
}

func TestSegmentEffective(t *testing.T) {
	assert.Equal(t, "けんた", Segment{Text: "健太", Reading: "けんた"}.Effective())
	assert.Equal(t, "はバカ", Segment{Text: "はバカ"}.Effective())
	assert.True(t, Segment{Text: "健太", Reading: "けんた"}.IsHint())
	assert.False(t, Segment{Text: "はバカ"}.IsHint())
}
