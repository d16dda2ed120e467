package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/ieee0824/japhone-go/dict"
	"github.com/ieee0824/japhone-go/trie"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "dictpack",
		Usage: "pack japhone dictionaries into binary forms",
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "pack a JSON dictionary into the flat binary form",
				ArgsUsage: "SRC [DEST]",
				Action:    runBuild,
			},
			{
				Name:      "archive",
				Usage:     "compile a dictionary into a trie archive",
				ArgsUsage: "SRC [DEST]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "words",
						Usage: "treat SRC as a word-boundary list instead of a phoneme dictionary",
					},
				},
				Action: runArchive,
			},
			{
				Name:      "info",
				Usage:     "show dictionary format, version and entry counts",
				ArgsUsage: "FILE",
				Action:    runInfo,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func srcDest(c *cli.Context, ext string) (string, string, error) {
	if c.NArg() < 1 {
		return "", "", fmt.Errorf("missing source file, see '%s --help'", c.Command.Name)
	}
	src := c.Args().Get(0)
	dest := c.Args().Get(1)
	if dest == "" {
		dest = src + ext
	}
	return src, dest, nil
}

func runBuild(c *cli.Context) error {
	src, dest, err := srcDest(c, ".bin")
	if err != nil {
		return err
	}
	t, err := dict.LoadPhonemeMapFile(src)
	if err != nil {
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := dict.WriteTrie(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "packed %s entries into %s\n", humanize.Comma(int64(t.Len())), dest)
	return nil
}

func runArchive(c *cli.Context) error {
	src, dest, err := srcDest(c, ".trie")
	if err != nil {
		return err
	}
	var t *trie.Trie
	if c.Bool("words") {
		t, err = dict.LoadWordListFile(src)
	} else {
		t, err = loadPhonemes(src)
	}
	if err != nil {
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := trie.WriteOverlay(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "archived %s entries into %s\n", humanize.Comma(int64(t.Len())), dest)
	return nil
}

// loadPhonemes accepts either JSON or the flat binary form.
func loadPhonemes(path string) (*trie.Trie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) >= 4 && string(data[0:4]) == dict.BinaryMagic {
		return dict.ReadTrieFile(path)
	}
	return dict.LoadPhonemeMapFile(path)
}

func runInfo(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing file, see '%s --help'", c.Command.Name)
	}
	path := c.Args().Get(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch {
	case len(data) >= 24 && string(data[0:4]) == trie.ArchiveMagic:
		major := binary.LittleEndian.Uint16(data[4:6])
		minor := binary.LittleEndian.Uint16(data[6:8])
		phonemes := binary.LittleEndian.Uint32(data[8:12])
		words := binary.LittleEndian.Uint32(data[12:16])
		fmt.Printf("trie archive v%d.%d\n", major, minor)
		fmt.Printf("  phoneme entries: %s\n", humanize.Comma(int64(phonemes)))
		fmt.Printf("  word entries:    %s\n", humanize.Comma(int64(words)))
		fmt.Printf("  size:            %s\n", humanize.Bytes(uint64(len(data))))
	case len(data) >= 12 && string(data[0:4]) == dict.BinaryMagic:
		major := binary.LittleEndian.Uint16(data[4:6])
		minor := binary.LittleEndian.Uint16(data[6:8])
		count := binary.LittleEndian.Uint32(data[8:12])
		fmt.Printf("flat binary dictionary v%d.%d\n", major, minor)
		fmt.Printf("  entries: %s\n", humanize.Comma(int64(count)))
		fmt.Printf("  size:    %s\n", humanize.Bytes(uint64(len(data))))
	default:
		t, err := dict.LoadPhonemeMapFile(path)
		if err != nil {
			return fmt.Errorf("unrecognized dictionary %s: %w", path, err)
		}
		fmt.Printf("JSON dictionary\n")
		fmt.Printf("  entries: %s\n", humanize.Comma(int64(t.Len())))
		fmt.Printf("  size:    %s\n", humanize.Bytes(uint64(len(data))))
	}
	return nil
}
