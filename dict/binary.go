package dict

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ieee0824/japhone-go/trie"
)

// Flat binary dictionary, all integers little-endian. A 12-byte header
// (magic "JPHO", u16 major = 1, u16 minor = 0, u32 entry count) followed
// by one record per entry: varint key length, key bytes, varint value
// length, value bytes. Loading it is semantically identical to loading
// the same pairs from the text forms.
const (
	BinaryMagic = "JPHO"
	binaryMajor = 1
	binaryMinor = 0
)

// maxBlobLen bounds a single key or value; longer lengths only occur in
// corrupt files and would otherwise drive huge allocations.
const maxBlobLen = 1 << 20

var (
	ErrBadMagic           = errors.New("dict: bad dictionary magic")
	ErrUnsupportedVersion = errors.New("dict: unsupported dictionary version")
	ErrTruncated          = errors.New("dict: truncated dictionary")
)

// ReadTrie reads a flat binary dictionary into a fresh trie.
func ReadTrie(r io.Reader) (*trie.Trie, error) {
	br := bufio.NewReader(r)
	var hdr [12]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header", ErrTruncated)
	}
	if string(hdr[0:4]) != BinaryMagic {
		return nil, ErrBadMagic
	}
	major := binary.LittleEndian.Uint16(hdr[4:6])
	minor := binary.LittleEndian.Uint16(hdr[6:8])
	if major != binaryMajor || minor != binaryMinor {
		return nil, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, major, minor)
	}
	count := binary.LittleEndian.Uint32(hdr[8:12])

	t := trie.New()
	for i := uint32(0); i < count; i++ {
		key, err := readBlob(br)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d key", ErrTruncated, i)
		}
		value, err := readBlob(br)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d value", ErrTruncated, i)
		}
		t.Insert(key, value)
	}
	return t, nil
}

func readBlob(br *bufio.Reader) (string, error) {
	n, err := binary.ReadUvarint(br)
	if err != nil {
		return "", err
	}
	if n > maxBlobLen {
		return "", fmt.Errorf("implausible length %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(br, b); err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadTrieFile is a convenience wrapper that opens a file path.
func ReadTrieFile(path string) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	start := time.Now()
	t, err := ReadTrie(f)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d entries from %s in %s", t.Len(), path, time.Since(start))
	return t, nil
}

// WriteTrie serializes t in the flat binary form, entries in the trie's
// enumeration order.
func WriteTrie(w io.Writer, t *trie.Trie) error {
	bw := bufio.NewWriter(w)
	var hdr [12]byte
	copy(hdr[0:4], BinaryMagic)
	binary.LittleEndian.PutUint16(hdr[4:6], binaryMajor)
	binary.LittleEndian.PutUint16(hdr[6:8], binaryMinor)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(t.Len()))
	bw.Write(hdr[:])

	var scratch [binary.MaxVarintLen64]byte
	writeBlob := func(b []byte) {
		n := binary.PutUvarint(scratch[:], uint64(len(b)))
		bw.Write(scratch[:n])
		bw.Write(b)
	}
	t.Each(func(key []rune, value string) bool {
		writeBlob([]byte(string(key)))
		writeBlob([]byte(value))
		return true
	})
	return bw.Flush()
}
