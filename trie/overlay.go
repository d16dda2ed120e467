package trie

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ieee0824/japhone-go/codepoint"
)

// Archive layout, all integers little-endian. A 24-byte header:
//
//	offset 0  magic "JPNT"
//	offset 4  u16 major version
//	offset 6  u16 minor version
//	offset 8  u32 phoneme entry count (non-empty values)
//	offset 12 u32 word entry count (empty marker values)
//	offset 16 u64 root node offset
//
// Each node is a flags byte (bit 0 = has value, bits 1-6 = child count,
// or bit 7 set when the count follows as a varint), an optional varint
// value length plus value bytes, then the child table: per child a 3-byte
// code point and a 4-byte signed offset relative to the end of its entry.
// Children are sorted by code point so lookup is a binary search.
const (
	// ArchiveMagic starts every trie archive file.
	ArchiveMagic = "JPNT"

	archiveMajor   = 2
	archiveMinor   = 0
	headerSize     = 24
	childEntrySize = 7
)

var (
	ErrArchiveMagic   = errors.New("trie: bad archive magic")
	ErrArchiveVersion = errors.New("trie: unsupported archive version")
	ErrArchiveCorrupt = errors.New("trie: corrupt archive")
)

// Overlay serves trie lookups directly from an archive buffer without
// materializing nodes, so memory-mapped dictionaries cost no allocations
// to open. The buffer must not be modified while the overlay is in use.
type Overlay struct {
	data     []byte
	root     int
	phonemes int
	words    int
}

// OpenOverlay validates data as a trie archive and returns a read-only
// view of it. The whole node graph is checked up front; lookups on the
// returned overlay cannot go out of bounds.
func OpenOverlay(data []byte) (*Overlay, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrArchiveCorrupt, len(data))
	}
	if !bytes.Equal(data[:4], []byte(ArchiveMagic)) {
		return nil, ErrArchiveMagic
	}
	major := binary.LittleEndian.Uint16(data[4:6])
	minor := binary.LittleEndian.Uint16(data[6:8])
	if major != archiveMajor {
		return nil, fmt.Errorf("%w: %d.%d", ErrArchiveVersion, major, minor)
	}
	root := binary.LittleEndian.Uint64(data[16:24])
	if root < headerSize || root >= uint64(len(data)) {
		return nil, fmt.Errorf("%w: root offset %d outside buffer", ErrArchiveCorrupt, root)
	}
	o := &Overlay{
		data:     data,
		root:     int(root),
		phonemes: int(binary.LittleEndian.Uint32(data[8:12])),
		words:    int(binary.LittleEndian.Uint32(data[12:16])),
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// PhonemeCount returns the header's count of entries with non-empty values.
func (o *Overlay) PhonemeCount() int { return o.phonemes }

// WordCount returns the header's count of empty-valued marker entries.
func (o *Overlay) WordCount() int { return o.words }

// archNode is the decoded fixed part of one node.
type archNode struct {
	hasValue bool
	value    []byte
	count    int
	table    int
}

func (o *Overlay) parseNode(off int) (archNode, bool) {
	var n archNode
	if off < headerSize || off >= len(o.data) {
		return n, false
	}
	flags := o.data[off]
	p := off + 1
	n.hasValue = flags&0x01 != 0
	if flags&0x80 != 0 {
		v, sz := binary.Uvarint(o.data[p:])
		if sz <= 0 || v > uint64(len(o.data)) {
			return n, false
		}
		n.count = int(v)
		p += sz
	} else {
		n.count = int(flags>>1) & 0x3F
	}
	if n.hasValue {
		v, sz := binary.Uvarint(o.data[p:])
		if sz <= 0 {
			return n, false
		}
		p += sz
		if v > uint64(len(o.data)-p) {
			return n, false
		}
		n.value = o.data[p : p+int(v)]
		p += int(v)
	}
	if n.count > (len(o.data)-p)/childEntrySize {
		return n, false
	}
	n.table = p
	return n, true
}

func (o *Overlay) childAt(n archNode, i int) (rune, int) {
	e := o.data[n.table+i*childEntrySize:]
	cp := rune(uint32(e[0]) | uint32(e[1])<<8 | uint32(e[2])<<16)
	rel := int32(binary.LittleEndian.Uint32(e[3:childEntrySize]))
	return cp, n.table + (i+1)*childEntrySize + int(rel)
}

func (o *Overlay) findChild(n archNode, r rune) (int, bool) {
	lo, hi := 0, n.count
	for lo < hi {
		mid := (lo + hi) / 2
		cp, off := o.childAt(n, mid)
		switch {
		case cp == r:
			return off, true
		case cp < r:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// validate walks every reachable node once, checking bounds, child table
// ordering and the absence of offset cycles.
func (o *Overlay) validate() error {
	seen := make(map[int]bool)
	stack := []int{o.root}
	for len(stack) > 0 {
		off := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[off] {
			return fmt.Errorf("%w: node offset %d visited twice", ErrArchiveCorrupt, off)
		}
		seen[off] = true
		n, ok := o.parseNode(off)
		if !ok {
			return fmt.Errorf("%w: bad node at offset %d", ErrArchiveCorrupt, off)
		}
		prev := rune(-1)
		for i := 0; i < n.count; i++ {
			cp, child := o.childAt(n, i)
			if cp <= prev {
				return fmt.Errorf("%w: unsorted child table at offset %d", ErrArchiveCorrupt, off)
			}
			prev = cp
			stack = append(stack, child)
		}
	}
	return nil
}

// OverlayCursor is the archive counterpart of Cursor: a resumable walk,
// one code point per Step.
type OverlayCursor struct {
	o   *Overlay
	off int
}

// Cursor returns a cursor positioned at the archive root.
func (o *Overlay) Cursor() OverlayCursor {
	return OverlayCursor{o: o, off: o.root}
}

// Step advances the cursor along the edge labeled r. Once Step returns
// false the cursor stays dead.
func (c *OverlayCursor) Step(r rune) bool {
	if c.off < 0 {
		return false
	}
	n, ok := c.o.parseNode(c.off)
	if !ok {
		c.off = -1
		return false
	}
	child, found := c.o.findChild(n, r)
	if !found {
		c.off = -1
		return false
	}
	c.off = child
	return true
}

// Value returns the value at the current node, if any.
func (c *OverlayCursor) Value() (string, bool) {
	if c.off < 0 {
		return "", false
	}
	n, ok := c.o.parseNode(c.off)
	if !ok || !n.hasValue {
		return "", false
	}
	return string(n.value), true
}

// Get returns the value stored under key.
func (o *Overlay) Get(key string) (string, bool) {
	cur := o.Cursor()
	for i := 0; i < len(key); {
		var r rune
		r, i = codepoint.Next(key, i)
		if !cur.Step(r) {
			return "", false
		}
	}
	return cur.Value()
}

// LongestMatch mirrors Trie.LongestMatch over the archive.
func (o *Overlay) LongestMatch(cps []rune, start int) (length int, value string, ok bool) {
	cur := o.Cursor()
	for i := start; i < len(cps); i++ {
		if !cur.Step(cps[i]) {
			break
		}
		if v, has := cur.Value(); has {
			length, value, ok = i-start+1, v, true
		}
	}
	return length, value, ok
}

// Trie materializes the archive into a mutable in-memory trie holding the
// same mapping.
func (o *Overlay) Trie() *Trie {
	t := New()
	type frame struct {
		off int
		n   *node
	}
	stack := []frame{{o.root, t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		an, ok := o.parseNode(f.off)
		if !ok {
			continue
		}
		if an.hasValue {
			f.n.value = string(an.value)
			f.n.hasValue = true
			t.size++
		}
		if an.count > 0 && f.n.children == nil {
			f.n.children = make(map[rune]*node, an.count)
		}
		for i := 0; i < an.count; i++ {
			cp, childOff := o.childAt(an, i)
			child := &node{}
			f.n.children[cp] = child
			stack = append(stack, frame{childOff, child})
		}
	}
	return t
}

// WriteOverlay serializes t in archive form. Children are emitted in
// post-order so that every child table refers backward, and sorted by
// code point within each node.
func WriteOverlay(w io.Writer, t *Trie) error {
	if t == nil {
		return fmt.Errorf("trie: write archive: nil trie")
	}
	var area []byte
	var emit func(n *node) int
	emit = func(n *node) int {
		keys := n.sortedKeys()
		offs := make([]int, len(keys))
		for i, r := range keys {
			offs[i] = emit(n.children[r])
		}
		nodeOff := headerSize + len(area)
		flags := byte(0)
		if n.hasValue {
			flags |= 0x01
		}
		if len(keys) < 0x40 {
			flags |= byte(len(keys)) << 1
			area = append(area, flags)
		} else {
			flags |= 0x80
			area = append(area, flags)
			area = binary.AppendUvarint(area, uint64(len(keys)))
		}
		if n.hasValue {
			area = binary.AppendUvarint(area, uint64(len(n.value)))
			area = append(area, n.value...)
		}
		entry := headerSize + len(area)
		for i, r := range keys {
			rel := int32(offs[i] - (entry + childEntrySize))
			area = append(area, byte(r), byte(r>>8), byte(r>>16))
			area = binary.LittleEndian.AppendUint32(area, uint32(rel))
			entry += childEntrySize
		}
		return nodeOff
	}
	rootOff := emit(t.root)

	phonemes, words := 0, 0
	t.Each(func(_ []rune, v string) bool {
		if v == "" {
			words++
		} else {
			phonemes++
		}
		return true
	})

	hdr := make([]byte, 0, headerSize)
	hdr = append(hdr, ArchiveMagic...)
	hdr = binary.LittleEndian.AppendUint16(hdr, archiveMajor)
	hdr = binary.LittleEndian.AppendUint16(hdr, archiveMinor)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(phonemes))
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(words))
	hdr = binary.LittleEndian.AppendUint64(hdr, uint64(rootOff))
	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("write archive header: %w", err)
	}
	if _, err := w.Write(area); err != nil {
		return fmt.Errorf("write archive nodes: %w", err)
	}
	return nil
}
