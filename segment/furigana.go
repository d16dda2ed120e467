package segment

import (
	"strings"

	"github.com/ieee0824/japhone-go/codepoint"
	"github.com/ieee0824/japhone-go/internal/runeclass"
	"github.com/ieee0824/japhone-go/trie"
)

// Corner bracket code points that delimit a reading hint, as in 健太「けんた」.
const (
	openBracket  = '「'
	closeBracket = '」'
)

// Segment is one span of scanned input. Text is the written form.
// Reading is the pronounced form when a furigana hint applied to the
// span, and empty for plain text.
type Segment struct {
	Text    string
	Reading string
}

// IsHint reports whether the segment carries a reading hint.
func (s Segment) IsHint() bool {
	return s.Reading != ""
}

// Effective returns the string the segment should sound like: the
// reading for a hint, the text itself otherwise.
func (s Segment) Effective() string {
	if s.Reading != "" {
		return s.Reading
	}
	return s.Text
}

// ParseFurigana scans text for 「reading」 hints and splits it into
// plain and hinted segments. A hint binds to the surface immediately
// before its opening bracket: the scan walks back over trailing kana to
// the last non-kana character, then extends the surface leftward,
// stopping before punctuation, whitespace, an earlier 」, or kana that
// has no kanji between it and the window start. Kana inside the surface
// is kept only as okurigana of a preceding kanji.
//
// Hints that bind to nothing (bracket at the start of the window or
// preceded only by kana or punctuation) and hints whose reading is
// empty after trimming ASCII whitespace are dropped together with their
// brackets; the surrounding text stays plain.
//
// When words is non-nil it is consulted for compound overrides: if the
// surface plus text after the closing bracket forms a word in the trie,
// the hint is dissolved into a single plain segment of reading plus
// suffix, so 見「み」て with 見て in the trie becomes plain みて.
func ParseFurigana(text string, words *trie.Trie) []Segment {
	cps, _ := codepoint.DecodeString(text)

	var segs []Segment
	emitPlain := func(from, to int) {
		if from < to {
			segs = append(segs, Segment{Text: string(cps[from:to])})
		}
	}

	pos := 0
	for pos < len(cps) {
		open := indexOf(cps, pos, openBracket)
		if open < 0 {
			emitPlain(pos, len(cps))
			break
		}
		close := indexOf(cps, open+1, closeBracket)
		if close < 0 {
			// 閉じ括弧なし: 残りは全てプレーン
			emitPlain(pos, len(cps))
			break
		}

		reading := strings.Trim(string(cps[open+1:close]), " \t\r\n")

		// 括弧直前の送り仮名を遡って最後の非かなへ
		k := open
		for k > pos && runeclass.IsKana(cps[k-1]) {
			k--
		}
		if k == pos || reading == "" {
			// 表層なし、または空読み: ヒントを捨てて本文だけ残す
			emitPlain(pos, open)
			pos = close + 1
			continue
		}
		k--

		// 表層の開始位置を遡って探す
		s := surfaceStart(cps, pos, k)
		if s > k {
			// 句読点直後の括弧: 付く先がない
			emitPlain(pos, open)
			pos = close + 1
			continue
		}

		// 複合語の上書き: 表層+括弧後の続きが辞書語なら読みごと平文化する
		if n := compoundLen(cps, s, open, close, words); n > 0 {
			emitPlain(pos, s)
			suffix := string(cps[close+1 : close+1+n])
			tracer().Debugf("compound override: %s -> %s%s", string(cps[s:open]), reading, suffix)
			segs = append(segs, Segment{Text: reading + suffix})
			pos = close + 1 + n
			continue
		}

		emitPlain(pos, s)
		segs = append(segs, Segment{Text: string(cps[s:open]), Reading: reading})
		pos = close + 1
	}
	return segs
}

func indexOf(cps []rune, from int, c rune) int {
	for i := from; i < len(cps); i++ {
		if cps[i] == c {
			return i
		}
	}
	return -1
}

// surfaceStart walks backward from k (the last non-kana before the
// bracket) and returns the first index of the surface. It stops before
// punctuation, whitespace, a closing bracket, and kana with no kanji
// between it and pos, so a returned value of k+1 means nothing bound.
func surfaceStart(cps []rune, pos, k int) int {
	s := k + 1
	for i := k; i >= pos; i-- {
		c := cps[i]
		if runeclass.IsJapaneseStop(c) || c == closeBracket ||
			runeclass.IsASCIIPunct(c) || runeclass.IsASCIISpace(c) {
			break
		}
		if runeclass.IsKana(c) && !kanjiBefore(cps, pos, i) {
			break
		}
		s = i
	}
	return s
}

// kanjiBefore reports whether a kanji sits between pos and i with only
// kana in between, which makes cps[i] okurigana of that kanji.
func kanjiBefore(cps []rune, pos, i int) bool {
	for j := i - 1; j >= pos; j-- {
		if runeclass.IsKanji(cps[j]) {
			return true
		}
		if !runeclass.IsKana(cps[j]) {
			return false
		}
	}
	return false
}

// compoundLen walks the word trie through the surface cps[s:open] and
// on through the text after the closing bracket. It returns the length
// in code points of the longest continuation that ends a trie word, or
// 0 when the hint should stand.
func compoundLen(cps []rune, s, open, close int, words *trie.Trie) int {
	if words == nil {
		return 0
	}
	cur := words.Cursor()
	for i := s; i < open; i++ {
		if !cur.Step(cps[i]) {
			return 0
		}
	}
	n := 0
	for j := close + 1; j < len(cps); j++ {
		if !cur.Step(cps[j]) {
			break
		}
		if _, ok := cur.Value(); ok {
			n = j - close
		}
	}
	return n
}
