package dict

import "github.com/ieee0824/japhone-go/trie"

// kanaIPA maps kana to IPA-like phoneme strings. Hiragana and katakana
// columns share one pronunciation; a blank column means the sound has no
// spelling in that script.
var kanaIPA = []struct {
	hira, kata, ipa string
}{
	// 拗音 (2文字)
	{"きゃ", "キャ", "kʲa"},
	{"きゅ", "キュ", "kʲɯ"},
	{"きょ", "キョ", "kʲo"},
	{"ぎゃ", "ギャ", "gʲa"},
	{"ぎゅ", "ギュ", "gʲɯ"},
	{"ぎょ", "ギョ", "gʲo"},
	{"しゃ", "シャ", "ɕa"},
	{"しゅ", "シュ", "ɕɯ"},
	{"しょ", "ショ", "ɕo"},
	{"じゃ", "ジャ", "dʑa"},
	{"じゅ", "ジュ", "dʑɯ"},
	{"じょ", "ジョ", "dʑo"},
	{"ちゃ", "チャ", "tɕa"},
	{"ちゅ", "チュ", "tɕɯ"},
	{"ちょ", "チョ", "tɕo"},
	{"にゃ", "ニャ", "ɲa"},
	{"にゅ", "ニュ", "ɲɯ"},
	{"にょ", "ニョ", "ɲo"},
	{"ひゃ", "ヒャ", "ça"},
	{"ひゅ", "ヒュ", "çɯ"},
	{"ひょ", "ヒョ", "ço"},
	{"びゃ", "ビャ", "bʲa"},
	{"びゅ", "ビュ", "bʲɯ"},
	{"びょ", "ビョ", "bʲo"},
	{"ぴゃ", "ピャ", "pʲa"},
	{"ぴゅ", "ピュ", "pʲɯ"},
	{"ぴょ", "ピョ", "pʲo"},
	{"みゃ", "ミャ", "mʲa"},
	{"みゅ", "ミュ", "mʲɯ"},
	{"みょ", "ミョ", "mʲo"},
	{"りゃ", "リャ", "ɾʲa"},
	{"りゅ", "リュ", "ɾʲɯ"},
	{"りょ", "リョ", "ɾʲo"},
	// 外来語音 (カタカナのみ)
	{"", "ティ", "ti"},
	{"", "ディ", "di"},
	{"", "トゥ", "tɯ"},
	{"", "ドゥ", "dɯ"},
	{"", "テュ", "tʲɯ"},
	{"", "デュ", "dʲɯ"},
	{"", "ファ", "ɸa"},
	{"", "フィ", "ɸi"},
	{"", "フェ", "ɸe"},
	{"", "フォ", "ɸo"},
	{"", "フュ", "ɸʲɯ"},
	{"", "チェ", "tɕe"},
	{"", "シェ", "ɕe"},
	{"", "ジェ", "dʑe"},
	{"", "ウィ", "wi"},
	{"", "ウェ", "we"},
	{"", "ウォ", "wo"},
	{"", "ヴァ", "va"},
	{"", "ヴィ", "vi"},
	{"", "ヴェ", "ve"},
	{"", "ヴォ", "vo"},
	{"", "ヴ", "vɯ"},
	{"", "ツァ", "tsa"},
	{"", "ツィ", "tsi"},
	{"", "ツェ", "tse"},
	{"", "ツォ", "tso"},
	{"", "イェ", "je"},
	{"", "クァ", "kwa"},
	{"", "グァ", "gwa"},
	// ア行
	{"あ", "ア", "a"},
	{"い", "イ", "i"},
	{"う", "ウ", "ɯ"},
	{"え", "エ", "e"},
	{"お", "オ", "o"},
	// カ行
	{"か", "カ", "ka"},
	{"き", "キ", "ki"},
	{"く", "ク", "kɯ"},
	{"け", "ケ", "ke"},
	{"こ", "コ", "ko"},
	// ガ行
	{"が", "ガ", "ga"},
	{"ぎ", "ギ", "gi"},
	{"ぐ", "グ", "gɯ"},
	{"げ", "ゲ", "ge"},
	{"ご", "ゴ", "go"},
	// サ行
	{"さ", "サ", "sa"},
	{"し", "シ", "ɕi"},
	{"す", "ス", "sɯ"},
	{"せ", "セ", "se"},
	{"そ", "ソ", "so"},
	// ザ行
	{"ざ", "ザ", "za"},
	{"じ", "ジ", "dʑi"},
	{"ず", "ズ", "zɯ"},
	{"ぜ", "ゼ", "ze"},
	{"ぞ", "ゾ", "zo"},
	// タ行
	{"た", "タ", "ta"},
	{"ち", "チ", "tɕi"},
	{"つ", "ツ", "tsɯ"},
	{"て", "テ", "te"},
	{"と", "ト", "to"},
	// ダ行
	{"だ", "ダ", "da"},
	{"ぢ", "ヂ", "dʑi"},
	{"づ", "ヅ", "zɯ"},
	{"で", "デ", "de"},
	{"ど", "ド", "do"},
	// ナ行
	{"な", "ナ", "na"},
	{"に", "ニ", "ni"},
	{"ぬ", "ヌ", "nɯ"},
	{"ね", "ネ", "ne"},
	{"の", "ノ", "no"},
	// ハ行
	{"は", "ハ", "ha"},
	{"ひ", "ヒ", "çi"},
	{"ふ", "フ", "ɸɯ"},
	{"へ", "ヘ", "he"},
	{"ほ", "ホ", "ho"},
	// バ行
	{"ば", "バ", "ba"},
	{"び", "ビ", "bi"},
	{"ぶ", "ブ", "bɯ"},
	{"べ", "ベ", "be"},
	{"ぼ", "ボ", "bo"},
	// パ行
	{"ぱ", "パ", "pa"},
	{"ぴ", "ピ", "pi"},
	{"ぷ", "プ", "pɯ"},
	{"ぺ", "ペ", "pe"},
	{"ぽ", "ポ", "po"},
	// マ行
	{"ま", "マ", "ma"},
	{"み", "ミ", "mi"},
	{"む", "ム", "mɯ"},
	{"め", "メ", "me"},
	{"も", "モ", "mo"},
	// ヤ行
	{"や", "ヤ", "ja"},
	{"ゆ", "ユ", "jɯ"},
	{"よ", "ヨ", "jo"},
	// ラ行
	{"ら", "ラ", "ɾa"},
	{"り", "リ", "ɾi"},
	{"る", "ル", "ɾɯ"},
	{"れ", "レ", "ɾe"},
	{"ろ", "ロ", "ɾo"},
	// ワ行
	{"わ", "ワ", "wa"},
	{"を", "ヲ", "o"},
	// 小文字母音 (外来語フォールバック)
	{"ぁ", "ァ", "a"},
	{"ぃ", "ィ", "i"},
	{"ぅ", "ゥ", "ɯ"},
	{"ぇ", "ェ", "e"},
	{"ぉ", "ォ", "o"},
	// 特殊
	{"ん", "ン", "ɴ"},
	{"っ", "ッ", "ʔ"},
	{"", "ー", "ː"},
}

// Kana returns a fresh trie holding the built-in kana table. It gives
// callers without a dictionary file a working fallback pronunciation and
// gives larger dictionaries a base layer to insert over.
func Kana() *trie.Trie {
	t := trie.New()
	for _, e := range kanaIPA {
		if e.hira != "" {
			t.Insert(e.hira, e.ipa)
		}
		if e.kata != "" {
			t.Insert(e.kata, e.ipa)
		}
	}
	return t
}
