package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	japhone "github.com/ieee0824/japhone-go"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/ini.v1"
)

func main() {
	app := &cli.App{
		Name:      "japhone",
		Usage:     "convert Japanese text to IPA-style phonemes",
		ArgsUsage: "[text ...]",
		Version:   japhone.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Aliases: []string{"d"},
				Usage:   "phoneme dictionary (JSON, packed binary, or trie archive)",
			},
			&cli.StringFlag{
				Name:    "words",
				Aliases: []string{"w"},
				Usage:   "word-boundary list, one word per line",
			},
			&cli.BoolFlag{
				Name:  "no-segment",
				Usage: "convert the whole input as one token",
			},
			&cli.BoolFlag{
				Name:  "detail",
				Usage: "print per-token phonemes and timing to stderr",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read dictionary paths and options from an INI file",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// settings is the merged run configuration, flags over config file.
type settings struct {
	dict    string
	words   string
	segment bool
	detail  bool
}

func resolve(c *cli.Context) (settings, error) {
	s := settings{segment: true}
	if path := c.String("config"); path != "" {
		cfg, err := ini.Load(path)
		if err != nil {
			return s, fmt.Errorf("read config: %w", err)
		}
		sec := cfg.Section("dictionary")
		s.dict = sec.Key("dict").String()
		s.words = sec.Key("words").String()
		s.segment = cfg.Section("convert").Key("segment").MustBool(true)
	}
	if c.String("dict") != "" {
		s.dict = c.String("dict")
	}
	if c.String("words") != "" {
		s.words = c.String("words")
	}
	if c.Bool("no-segment") {
		s.segment = false
	}
	s.detail = c.Bool("detail")
	if s.dict == "" {
		return s, errors.New("no dictionary: pass --dict or set it in the config file")
	}
	return s, nil
}

func run(c *cli.Context) error {
	s, err := resolve(c)
	if err != nil {
		return err
	}

	opts := []japhone.Option{japhone.WithSegmentation(s.segment)}
	if s.words != "" {
		opts = append(opts, japhone.WithWordList(s.words))
	}
	start := time.Now()
	p, err := japhone.New(s.dict, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "japhone %s: %s phoneme entries, %s words, loaded in %s\n",
		japhone.Version,
		humanize.Comma(int64(p.EntryCount())),
		humanize.Comma(int64(p.WordCount())),
		time.Since(start).Round(time.Millisecond))

	if c.NArg() == 0 {
		return repl(p, s.detail)
	}
	return convertArgs(p, c.Args().Slice(), s.detail)
}

// convertArgs converts each argument in parallel and prints results in
// argument order.
func convertArgs(p *japhone.Phonemizer, texts []string, detail bool) error {
	results := make([]*japhone.Result, len(texts))
	var g errgroup.Group
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			res, err := p.ConvertDetailed(text)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, res := range results {
		printResult(texts[i], res, detail)
	}
	return nil
}

func repl(p *japhone.Phonemizer, detail bool) error {
	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
		case "quit", "exit":
			return nil
		default:
			res, err := p.ConvertDetailed(line)
			if err != nil {
				return err
			}
			printResult(line, res, detail)
		}
		fmt.Print("> ")
	}
	fmt.Println()
	return sc.Err()
}

func printResult(text string, res *japhone.Result, detail bool) {
	fmt.Println(res.Text)
	if !detail {
		return
	}
	fmt.Fprintf(os.Stderr, "  %s: %d tokens in %s\n",
		text, len(res.Tokens), res.Elapsed.Round(time.Microsecond))
	for _, tok := range res.Tokens {
		fmt.Fprintf(os.Stderr, "  %s\t%s\n", tok.Surface, tok.Phonemes)
	}
}
